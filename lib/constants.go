package lib

type Mode uint

const (
	ModeUnknown Mode = 0
	ModeDiff    Mode = 16
	ModeExtract Mode = 32
)

func (m Mode) String() string {
	switch m {
	case ModeDiff:
		return "diff"
	case ModeExtract:
		return "extract"
	}
	return "unknown"
}
