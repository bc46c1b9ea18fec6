package meta

import (
	"regexp"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
)

// DiagnosticFunc receives a printf style report for every recognized
// directive whose payload fails to parse.
type DiagnosticFunc func(format string, args ...any)

var diagnostic DiagnosticFunc = defaultDiagnostic

func defaultDiagnostic(format string, args ...any) {
	log.Warnf(format, args...)
}

// SetDiagnostic replaces the sink that receives parse failure reports
// and returns the previous sink so callers can restore it. A nil fn
// restores the default charmbracelet warning logger.
func SetDiagnostic(fn DiagnosticFunc) DiagnosticFunc {
	prev := diagnostic
	if fn == nil {
		fn = defaultDiagnostic
	}
	diagnostic = fn
	return prev
}

// LPubMeta is the !LPUB vocabulary: every layout directive the renderer
// understands hangs off this branch.
type LPubMeta struct {
	BranchMeta
	Page               PageMeta
	Assem              AssemMeta
	StepNumber         NumberPlacementMeta
	Callout            CalloutMeta
	PagePointer        PagePointerMeta
	MultiStep          MultiStepMeta
	Pli                PliMeta
	Bom                BomMeta
	Remove             RemoveMeta
	Reserve            FloatMeta
	PartSub            PartMeta
	Resolution         ResolutionMeta
	Insert             InsertMeta
	Include            StringMeta
	NoStep             NoStepMeta
	FadeStep           FadeStepMeta
	RotateIcon         RotateIconMeta
	MergeInstanceCount BoolMeta
	StepPli            StepPliMeta
	OneToOne           OneToOneMeta
	OneToOneP          NumberPlacementMeta
	PartID             PartIDMeta
	SubModel           SubModelMeta
	Sticker            StickerMeta
	RightWrong         RightWrongMeta
	Illustration       IllustrationMeta
}

func (m *LPubMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Page.Init(&m.BranchMeta, "PAGE")
	m.Assem.Init(&m.BranchMeta, "ASSEM")
	m.StepNumber.Init(&m.BranchMeta, "STEP_NUMBER")
	m.Callout.Init(&m.BranchMeta, "CALLOUT")
	m.PagePointer.Init(&m.BranchMeta, "PAGE_POINTER")
	m.MultiStep.Init(&m.BranchMeta, "MULTI_STEP")
	m.Pli.Init(&m.BranchMeta, "PLI")
	m.Bom.Init(&m.BranchMeta, "BOM")
	m.Remove.Init(&m.BranchMeta, "REMOVE")
	m.Reserve.Init(&m.BranchMeta, "RESERVE", ReserveSpaceRc)
	m.PartSub.Init(&m.BranchMeta, "PART")
	m.Resolution.Init(&m.BranchMeta, "RESOLUTION")
	m.Insert.Init(&m.BranchMeta, "INSERT")
	m.Include.Init(&m.BranchMeta, "INCLUDE", IncludeRc)
	m.NoStep.Init(&m.BranchMeta, "NOSTEP", NoStepRc)
	m.FadeStep.Init(&m.BranchMeta, "FADE_STEP")
	m.RotateIcon.Init(&m.BranchMeta, "ROTATE_ICON")
	m.MergeInstanceCount.Init(&m.BranchMeta, "CONSOLIDATE_INSTANCE_COUNT")
	m.StepPli.Init(&m.BranchMeta, "STEP_PLI")
	m.OneToOne.Init(&m.BranchMeta, "ONETOONE")
	m.OneToOneP.Init(&m.BranchMeta, "ONETOONEP")
	m.PartID.Init(&m.BranchMeta, "PARTID")
	m.SubModel.Init(&m.BranchMeta, "SUBMODEL")
	m.Sticker.Init(&m.BranchMeta, "STICKER")
	m.RightWrong.Init(&m.BranchMeta, "RIGHTWRONG")
	m.Illustration.Init(&m.BranchMeta, "ILLUSTRATION")

	m.Reserve.SetRange(0, 1000000)

	m.RotateIcon.Placement.SetValue(RightOutside, CsiType)
	m.StepNumber.Placement.SetValue(BottomLeftOutside, PageHeaderType)
	m.StepNumber.Color.SetValue("black")
	m.MergeInstanceCount.SetValue(false)
	m.OneToOneP.Placement.SetValue(BottomLeftInsideCorner, PageType)
}

// MLCadMeta covers the MLCad directives that matter to step grouping.
// MLCad owns a much larger vocabulary, so any keyword this branch does
// not know is accepted untouched rather than failed.
type MLCadMeta struct {
	BranchMeta
	SkipBegin RcMeta
	SkipEnd   RcMeta
	Group     RcMeta
}

func (m *MLCadMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.SkipBegin.Init(&m.BranchMeta, "SKIP_BEGIN", MLCadSkipBeginRc)
	m.SkipEnd.Init(&m.BranchMeta, "SKIP_END", MLCadSkipEndRc)
	m.Group.Init(&m.BranchMeta, "BTG", MLCadGroupRc)
}

func (m *MLCadMeta) Parse(argv []string, index int, here ldraw.Where) Rc {
	if index >= len(argv) {
		return OkRc
	}
	child, ok := m.list[argv[index]]
	if !ok {
		return OkRc
	}
	return child.Parse(argv, index+1, here)
}

// LSynthMeta recognizes the LSynth flexible-part synthesis markers.
type LSynthMeta struct {
	BranchMeta
	Begin       RcMeta
	End         RcMeta
	Show        RcMeta
	Hide        RcMeta
	Inside      RcMeta
	Outside     RcMeta
	Cross       RcMeta
	Synthesized RcMeta
}

func (m *LSynthMeta) Init(parent *BranchMeta, name string) {
	parent.add(name, m)
	m.Begin.Init(&m.BranchMeta, "BEGIN", SynthBeginRc)
	m.End.Init(&m.BranchMeta, "END", SynthEndRc)
	m.Show.Init(&m.BranchMeta, "SHOW")
	m.Hide.Init(&m.BranchMeta, "HIDE")
	m.Inside.Init(&m.BranchMeta, "INSIDE")
	m.Outside.Init(&m.BranchMeta, "OUTSIDE")
	m.Cross.Init(&m.BranchMeta, "CROSS")
	m.Synthesized.Init(&m.BranchMeta, "SYNTHESIZED")
}

// MLCad buffer-exchange group lines carry a free-form group name after
// BTG, so they are cut out ahead of the generic tokenizer.
var mlcadGroup = regexp.MustCompile(`^\s*0\s+MLCAD\s+BTG\s+(.*)$`)

// Meta is the root of the directive tree. One instance accumulates
// document state line by line: Parse feeds it each source line in order,
// and the typed leaves hold the values in effect at the current point of
// the document.
type Meta struct {
	BranchMeta
	LPub     LPubMeta
	Step     RcMeta
	Clear    RcMeta
	RotStep  RotStepMeta
	BufExchg BuffExchgMeta
	MLCad    MLCadMeta
	Synth    LSynthMeta
}

// New builds the directive tree with factory defaults in place.
func New() *Meta {
	m := &Meta{}
	m.preamble = "0 "
	m.LPub.Init(&m.BranchMeta, "!LPUB")
	m.Step.Init(&m.BranchMeta, "STEP", StepRc)
	m.Clear.Init(&m.BranchMeta, "CLEAR", ClearRc)
	m.RotStep.Init(&m.BranchMeta, "ROTSTEP")
	m.BufExchg.Init(&m.BranchMeta, "BUFEXCHG")
	m.MLCad.Init(&m.BranchMeta, "MLCAD")
	m.Synth.Init(&m.BranchMeta, "SYNTH")
	return m
}

// Parse interprets one source line. Lines outside the known vocabulary
// return OkRc untouched; recognized lines update the tree and return the
// leaf's result code. A recognized keyword with a malformed payload
// returns FailureRc, leaves all state unchanged, and reports through the
// diagnostic sink when reportErrors is set. The legacy LPUB keyword is
// accepted as an alias for !LPUB, and PLIST routes into the PLI branch.
func (m *Meta) Parse(line string, here ldraw.Where, reportErrors bool) Rc {
	var argv []string

	if g := mlcadGroup.FindStringSubmatch(line); g != nil {
		argv = []string{"MLCAD", "BTG", g[1]}
	} else {
		argv = Split(line)
		if len(argv) > 0 {
			argv = argv[1:]
		}
		if len(argv) > 0 {
			if argv[0] == "LPUB" {
				argv[0] = "!LPUB"
			}
			if argv[0] == "PLIST" {
				return m.LPub.Pli.Parse(argv, 1, here)
			}
		}
	}

	if len(argv) > 0 {
		if _, ok := m.list[argv[0]]; ok {
			rc := m.BranchMeta.Parse(argv, 0, here)
			if rc == FailureRc && reportErrors {
				diagnostic("Parse failed %s:%d\n%s", here.ModelName, here.LineNumber, line)
			}
			return rc
		}
	}
	return OkRc
}

// Doc appends one grammar line per directive, in sorted keyword order.
func (m *Meta) Doc(out []string) []string {
	keys := make([]string, 0, len(m.list))
	for key := range m.list {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		out = m.list[key].Doc(out, "0 "+key)
	}
	return out
}
