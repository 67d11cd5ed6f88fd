package pipeline

import "fmt"

// Kind discriminates real data items from the stop marker. A tagged variant
// avoids overloading any legitimate integer pair as an end-of-stream signal.
type Kind uint8

const (
	// KindData is a producer-generated integer pair.
	KindData Kind = iota
	// KindStop tells exactly one consumer to exit.
	KindStop
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindData:
		return "data"
	case KindStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Item is the unit exchanged through the core. For data items the producer
// guarantees B == A + 1; consumers check, but do not enforce, that relation.
type Item struct {
	Kind Kind
	A    int
	B    int
}

// DataItem builds a real data item.
func DataItem(a, b int) Item {
	return Item{Kind: KindData, A: a, B: b}
}

// StopItem builds the end-of-stream marker.
func StopItem() Item {
	return Item{Kind: KindStop}
}

// Consistent reports whether a data item holds the expected pair relation.
func (it Item) Consistent() bool {
	return it.B == it.A+1
}

// String returns a compact representation for logs.
func (it Item) String() string {
	if it.Kind == KindStop {
		return "stop"
	}
	return fmt.Sprintf("(%d,%d)", it.A, it.B)
}
