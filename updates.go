package folio

// CommandType is a typed string for identifying updates in JSONL files.
type CommandType string

// Command types used for identifying updates.
const (
	CmdChangeQuantity  CommandType = "change-quantity"
	CmdChangePriceBuy  CommandType = "change-price-buy"
	CmdChangeLastPrice CommandType = "change-last-price"
	CmdReplacePosition CommandType = "replace-position"
	CmdDeletePosition  CommandType = "delete-position"
)

// PositionUpdate is a change that applies to a single Position.
//
// The set of position updates is closed: ChangeQuantity, ChangePriceBuy and
// ChangeLastPrice.
type PositionUpdate interface {
	What() CommandType
	positionUpdate()
}

// PortfolioUpdate is a change that applies to the Portfolio as a whole.
//
// The set of portfolio updates is closed: ReplacePosition and DeletePosition.
type PortfolioUpdate interface {
	What() CommandType
	portfolioUpdate()
}

// ChangeQuantity sets the quantity of a position.
type ChangeQuantity struct {
	Value PDecimal
}

// ChangePriceBuy sets the purchase price of a position.
type ChangePriceBuy struct {
	Value PDecimal
}

// ChangeLastPrice sets the last price of a position.
type ChangeLastPrice struct {
	Value PDecimal
}

func (ChangeQuantity) What() CommandType  { return CmdChangeQuantity }
func (ChangePriceBuy) What() CommandType  { return CmdChangePriceBuy }
func (ChangeLastPrice) What() CommandType { return CmdChangeLastPrice }

func (ChangeQuantity) positionUpdate()  {}
func (ChangePriceBuy) positionUpdate()  {}
func (ChangeLastPrice) positionUpdate() {}

// ReplacePosition inserts a position, or overwrites the one already held
// under the same identifier.
type ReplacePosition struct {
	ID       ISIN
	Position Position
}

// DeletePosition removes an existing position.
type DeletePosition struct {
	ID ISIN
}

func (ReplacePosition) What() CommandType { return CmdReplacePosition }
func (DeletePosition) What() CommandType  { return CmdDeletePosition }

func (ReplacePosition) portfolioUpdate() {}
func (DeletePosition) portfolioUpdate()  {}
