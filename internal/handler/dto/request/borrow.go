package request

// BorrowRangesQuery selects the rune (name or canonical id) and the caller's
// wallet. The address is only needed on a cache miss, but requiring it keeps
// the route's contract stable.
type BorrowRangesQuery struct {
	RuneID  string `form:"runeId" binding:"required"`
	Address string `form:"address" binding:"required"`
}
