package meta

// Stock back-cover strings. Documents override them through the
// LEGO_DISCLAIMER and APP_PLUG attributes.
const (
	stockDisclaimer = "LEGO® and the LEGO logo are registered trademarks of the LEGO Group, which does not sponsor, endorse or authorize these instructions."
	stockPlug       = "Instructions configured and generated using LPub3D Next"
)

// PageMeta controls the page itself: size, orientation, frame and
// fill, the page number, and the document attributes placed on cover,
// header and footer. Attribute content defaults are filled in by the
// publisher settings at run time; only their geometry and fonts are
// primed here.
type PageMeta struct {
	BranchMeta
	Size              PageSizeMeta
	Orientation       PageOrientationMeta
	Margin            MarginsMeta
	Border            BorderMeta
	Background        BackgroundMeta
	DisplayPageNumber BoolMeta
	TogglePnPlacement BoolMeta
	Number            NumberPlacementMeta
	InstanceCount     NumberPlacementMeta
	SubModelColor     StringListMeta
	PageHeader        PageHeaderMeta
	PageFooter        PageFooterMeta

	// Front cover attributes.
	TitleFront        PageAttributeTextMeta
	ModelName         PageAttributeTextMeta
	AuthorFront       PageAttributeTextMeta
	Pieces            PageAttributeTextMeta
	ModelDesc         PageAttributeTextMeta
	PublishDesc       PageAttributeTextMeta
	DocumentLogoFront PageAttributePictureMeta
	CoverImage        PageAttributePictureMeta

	// Content page header and footer attributes.
	URL       PageAttributeTextMeta
	Email     PageAttributeTextMeta
	Copyright PageAttributeTextMeta
	Author    PageAttributeTextMeta

	// Back cover attributes.
	TitleBack        PageAttributeTextMeta
	AuthorBack       PageAttributeTextMeta
	CopyrightBack    PageAttributeTextMeta
	URLBack          PageAttributeTextMeta
	EmailBack        PageAttributeTextMeta
	Disclaimer       PageAttributeTextMeta
	Plug             PageAttributeTextMeta
	DocumentLogoBack PageAttributePictureMeta
	PlugImage        PageAttributePictureMeta

	Category PageAttributeTextMeta
}

func (m *PageMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Size.Init(&m.BranchMeta, "SIZE", PageSizeRc)
	m.Orientation.Init(&m.BranchMeta, "ORIENTATION")
	m.Margin.Init(&m.BranchMeta, "MARGINS")
	m.Border.Init(&m.BranchMeta, "BORDER")
	m.Background.Init(&m.BranchMeta, "BACKGROUND")
	m.DisplayPageNumber.Init(&m.BranchMeta, "DISPLAY_PAGE_NUMBER")
	m.TogglePnPlacement.Init(&m.BranchMeta, "TOGGLE_PAGE_NUMBER_PLACEMENT")
	m.Number.Init(&m.BranchMeta, "NUMBER")
	m.InstanceCount.Init(&m.BranchMeta, "SUBMODEL_INSTANCE_COUNT")
	m.SubModelColor.Init(&m.BranchMeta, "SUBMODEL_BACKGROUND_COLOR")
	m.PageHeader.Init(&m.BranchMeta, "PAGE_HEADER")
	m.PageFooter.Init(&m.BranchMeta, "PAGE_FOOTER")

	m.TitleFront.Init(&m.BranchMeta, "DOCUMENT_TITLE_FRONT")
	m.TitleBack.Init(&m.BranchMeta, "DOCUMENT_TITLE_BACK")
	m.ModelName.Init(&m.BranchMeta, "MODEL_ID")
	m.ModelDesc.Init(&m.BranchMeta, "MODEL_DESCRIPTION")
	m.Pieces.Init(&m.BranchMeta, "MODEL_PIECES")
	m.AuthorFront.Init(&m.BranchMeta, "DOCUMENT_AUTHOR_FRONT")
	m.AuthorBack.Init(&m.BranchMeta, "DOCUMENT_AUTHOR_BACK")
	m.Author.Init(&m.BranchMeta, "DOCUMENT_AUTHOR")
	m.PublishDesc.Init(&m.BranchMeta, "PUBLISH_DESCRIPTION")
	m.URL.Init(&m.BranchMeta, "PUBLISH_URL")
	m.URLBack.Init(&m.BranchMeta, "PUBLISH_URL_BACK")
	m.Email.Init(&m.BranchMeta, "PUBLISH_EMAIL")
	m.EmailBack.Init(&m.BranchMeta, "PUBLISH_EMAIL_BACK")
	m.CopyrightBack.Init(&m.BranchMeta, "PUBLISH_COPYRIGHT_BACK")
	m.Copyright.Init(&m.BranchMeta, "PUBLISH_COPYRIGHT")
	m.DocumentLogoFront.Init(&m.BranchMeta, "DOCUMENT_LOGO_FRONT")
	m.DocumentLogoBack.Init(&m.BranchMeta, "DOCUMENT_LOGO_BACK")
	m.CoverImage.Init(&m.BranchMeta, "DOCUMENT_COVER_IMAGE")
	m.Disclaimer.Init(&m.BranchMeta, "LEGO_DISCLAIMER")
	m.Plug.Init(&m.BranchMeta, "APP_PLUG")
	m.PlugImage.Init(&m.BranchMeta, "APP_PLUG_IMAGE")
	m.Category.Init(&m.BranchMeta, "MODEL_CATEGORY")

	m.Size.SetValue(PageSizeData{SizeW: 8.3, SizeH: 11.7, SizeID: "A4"})
	m.Size.SetRange(1, 1000)
	m.Orientation.SetValue(Portrait)
	m.Border.SetValue(BorderData{
		Type:   BdrNone,
		Line:   BdrLnNone,
		Color:  "Black",
		Margin: [2]float32{DefaultMargin, DefaultMargin},
	})
	m.Background.SetValue(BackgroundData{Type: BgSubmodelColor})
	m.DisplayPageNumber.SetValue(true)
	m.Number.Placement.SetValue(BottomRightInsideCorner, PageType)
	m.Number.Color.SetValue("black")
	m.Number.Font.SetValue("Arial,24,-1,255,75,0,0,0,0,0")
	m.InstanceCount.Placement.SetValue(TopLeftOutsideCorner, PageNumberType)
	m.InstanceCount.Color.SetValue("black")
	m.InstanceCount.Font.SetValue("Arial,48,-1,255,75,0,0,0,0,0")
	m.SubModelColor.SetValue([]string{"#ffffff", "#ffffcc", "#ffcccc", "#ccccff"})

	// Front cover. The title anchors the column; the other attributes
	// chain off it.
	m.DocumentLogoFront.Placement.SetValue(BottomOutside, PageHeaderType)
	m.DocumentLogoFront.Type = PageDocumentLogoType
	m.ModelName.Placement.SetValue(TopLeftOutside, PageTitleType)
	m.ModelName.Type = PageModelNameType
	m.ModelName.TextFont.SetValue("Arial,20,-1,255,75,0,0,0,0,0")
	m.TitleFront.Placement.SetValue(LeftInside, PageType)
	m.TitleFront.Type = PageTitleType
	m.TitleFront.TextFont.SetValue("Arial,32,-1,255,75,0,0,0,0,0")
	m.AuthorFront.Placement.SetValue(BottomLeftOutside, PageTitleType)
	m.AuthorFront.Type = PageAuthorType
	m.AuthorFront.TextFont.SetValue("Arial,20,-1,255,75,0,0,0,0,0")
	m.Pieces.Placement.SetValue(BottomLeftOutside, PageAuthorType)
	m.Pieces.Type = PagePiecesType
	m.Pieces.TextFont.SetValue("Arial,20,-1,255,75,0,0,0,0,0")
	m.ModelDesc.Placement.SetValue(BottomLeftOutside, PagePiecesType)
	m.ModelDesc.Type = PageModelDescType
	m.ModelDesc.TextFont.SetValue("Arial,18,-1,255,75,0,0,0,0,0")
	m.PublishDesc.Placement.SetValue(BottomLeftOutside, PageModelDescType)
	m.PublishDesc.Type = PagePublishDescType
	m.PublishDesc.TextFont.SetValue("Arial,18,-1,255,75,0,0,0,0,0")
	m.CoverImage.Placement.SetValue(CenterCenter, PageType)
	m.CoverImage.Type = PageCoverImageType

	// Content page corners.
	m.URL.Placement.SetValue(TopLeftInsideCorner, PageType)
	m.URL.Type = PageURLType
	m.URL.TextFont.SetValue("Arial,18,-1,255,75,0,0,0,0,0")
	m.Email.Placement.SetValue(TopRightInsideCorner, PageType)
	m.Email.Type = PageEmailType
	m.Email.TextFont.SetValue("Arial,18,-1,255,75,0,0,0,0,0")
	m.Copyright.Placement.SetValue(BottomLeftInsideCorner, PageType)
	m.Copyright.Type = PageCopyrightType
	m.Copyright.TextFont.SetValue("Arial,18,-1,255,75,0,0,0,0,0")
	m.Author.Placement.SetValue(LeftBottomOutside, PageNumberType)
	m.Author.Type = PageAuthorType
	m.Author.TextFont.SetValue("Arial,18,-1,255,75,0,0,0,0,0")

	// Back cover. The title is centered; the rest stack below it.
	m.DocumentLogoBack.Placement.SetValue(BottomOutside, PageHeaderType)
	m.DocumentLogoBack.PicScale.SetValue(0.5)
	m.DocumentLogoBack.Type = PageDocumentLogoType
	m.TitleBack.Placement.SetValue(CenterCenter, PageType)
	m.TitleBack.Type = PageTitleType
	m.TitleBack.TextFont.SetValue("Arial,18,-1,255,75,0,0,0,0,0")
	m.AuthorBack.Placement.SetValue(BottomOutside, PageTitleType)
	m.AuthorBack.Type = PageAuthorType
	m.AuthorBack.TextFont.SetValue("Arial,18,-1,255,75,0,0,0,0,0")
	m.CopyrightBack.Placement.SetValue(BottomOutside, PageAuthorType)
	m.CopyrightBack.Type = PageCopyrightType
	m.CopyrightBack.TextFont.SetValue("Arial,18,-1,255,75,0,0,0,0,0")
	m.URLBack.Placement.SetValue(BottomOutside, PageCopyrightType)
	m.URLBack.Type = PageURLType
	m.URLBack.TextFont.SetValue("Arial,18,-1,255,75,0,0,0,0,0")
	m.EmailBack.Placement.SetValue(BottomOutside, PageURLType)
	m.EmailBack.Type = PageEmailType
	m.EmailBack.TextFont.SetValue("Arial,18,-1,255,75,0,0,0,0,0")
	m.Disclaimer.Placement.SetValue(BottomOutside, PageEmailType)
	m.Disclaimer.Type = PageDisclaimerType
	m.Disclaimer.TextFont.SetValue("Arial,18,-1,255,75,0,0,0,0,0")
	m.Disclaimer.Content.SetValue(stockDisclaimer)
	m.Plug.Placement.SetValue(BottomOutside, PageDisclaimerType)
	m.Plug.Type = PagePlugType
	m.Plug.TextFont.SetValue("Arial,16,-1,255,75,0,0,0,0,0")
	m.Plug.Content.SetValue(stockPlug)
	m.PlugImage.Placement.SetValue(BottomOutside, PagePlugType)
	m.PlugImage.Type = PagePlugImageType

	m.Category.Placement.SetValue(BottomLeftOutside, PageType)
	m.Category.Type = PageCategoryType
	m.Category.TextFont.SetValue("Arial,18,-1,255,75,0,0,0,0,0")
}
