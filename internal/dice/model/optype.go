package model

// OpType identifies which grammar production produced a RollResult node.
type OpType string

const (
	OpValue           OpType = "value"
	OpAdd             OpType = "add"
	OpSubtract        OpType = "subtract"
	OpMultiply        OpType = "multiply"
	OpCount           OpType = "count"
	OpDrop            OpType = "drop"
	OpClamp           OpType = "clamp"
	OpRollDice        OpType = "rollDice"
	OpRollFudge       OpType = "rollFudge"
	OpRollPercent     OpType = "rollPercent"
	OpRollD66         OpType = "rollD66"
	OpRollVals        OpType = "rollVals"
	OpRollPenetration OpType = "rollPenetration"
	OpReroll          OpType = "reroll"
	OpCompound        OpType = "compound"
	OpExplode         OpType = "explode"
	OpSort            OpType = "sort"
	OpComma           OpType = "comma"
	OpTotal           OpType = "total"
)
