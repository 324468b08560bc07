package folio

// ValidatePosition checks that upd can be applied to pos.
//
// Field changes carry a PDecimal that is already non-negative, so they are
// always accepted. This is where rules involving the current position belong.
func ValidatePosition(pos Position, upd PositionUpdate) (PositionUpdate, error) {
	switch upd.(type) {
	case ChangeQuantity, ChangePriceBuy, ChangeLastPrice:
		return upd, nil
	default:
		return upd, UnknownPositionUpdateError{Position: pos}
	}
}

// ApplyPosition returns a copy of pos with upd applied. Only the targeted
// field changes.
func ApplyPosition(pos Position, upd PositionUpdate) (Position, error) {
	upd, err := ValidatePosition(pos, upd)
	if err != nil {
		return pos, err
	}
	switch v := upd.(type) {
	case ChangeQuantity:
		return pos.WithQuantity(v.Value), nil
	case ChangePriceBuy:
		return pos.WithPurchasePrice(v.Value), nil
	case ChangeLastPrice:
		return pos.WithLastPrice(v.Value), nil
	default:
		return pos, UnknownPositionUpdateError{Position: pos}
	}
}
