package value

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, an unset Value carries it

	KindNull
	KindBool
	KindNumber
	KindString
	KindList
	KindMap

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsScalar() bool {
	switch k {
	default:
		return false
	case KindNull, KindBool, KindNumber, KindString:
		return true
	}
}

func (k KindEnum) IsContainer() bool {
	switch k {
	default:
		return false
	case KindList, KindMap:
		return true
	}
}
