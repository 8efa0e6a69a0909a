package record

// Equal compares two records of any kind. Records of different kinds are never
// equal; this is not an error.
func Equal(a, b Record) bool {
	switch x := a.(type) {
	case *ShortRecord:
		y, ok := b.(*ShortRecord)
		return ok && x.Equal(y)
	case *FullRecord:
		y, ok := b.(*FullRecord)
		return ok && x.Equal(y)
	default:
		return false
	}
}

// Compare orders two records of the same kind by identifier. Mixing kinds, or
// passing nil, is a contract violation.
func Compare(a, b Record) (int, error) {
	switch x := a.(type) {
	case *ShortRecord:
		if y, ok := b.(*ShortRecord); ok && x != nil && y != nil {
			return x.Compare(y), nil
		}
	case *FullRecord:
		if y, ok := b.(*FullRecord); ok && x != nil && y != nil {
			return x.Compare(y), nil
		}
	}
	return 0, contractError("ordering", a, b)
}

// Merge combines two full records. Any other pairing is a contract violation.
func Merge(a, b Record) (*FullRecord, error) {
	x, okA := a.(*FullRecord)
	y, okB := b.(*FullRecord)
	if !okA || !okB || x == nil || y == nil {
		return nil, contractError("merge", a, b)
	}
	return x.Merge(y)
}
