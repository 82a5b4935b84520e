package pipeline

// Stage identifies where a run is in its lifecycle. A run advances only on
// success of the current stage; any error leaves it failed at that stage.
type Stage int

const (
	StageIdle Stage = iota
	StageSelecting
	StageExtracting
	StageSummarizing
	StageFormatting
	StagePublishing
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageSelecting:
		return "selecting"
	case StageExtracting:
		return "extracting"
	case StageSummarizing:
		return "summarizing"
	case StageFormatting:
		return "formatting"
	case StagePublishing:
		return "publishing"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}
