package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Plant operation error messages
	ErrMsgBuyPlantFailed    = "Failed to buy plant"
	ErrMsgRemovePlantFailed = "Failed to remove plant"
	ErrMsgHarvestFailed     = "Failed to harvest plant"

	// Shop operation error messages
	ErrMsgBuyItemFailed  = "Failed to buy item"
	ErrMsgSellItemFailed = "Failed to sell item"

	// Market operation error messages
	ErrMsgAcceptOfferFailed = "Failed to accept offer"
	ErrMsgQuickSellFailed   = "Failed to sell harvest"
)

// User-facing error messages derived from domain errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgStrainNotFoundHTTP     = "Strain not found"
	ErrMsgItemNotFoundHTTP       = "Item not found"
	ErrMsgUpgradeNotFoundHTTP    = "Upgrade not found"
	ErrMsgResearchNotFoundHTTP   = "Research node not found"
	ErrMsgDifficultyNotFoundHTTP = "Difficulty not found"
	ErrMsgOfferNotFoundHTTP      = "Offer not found"

	ErrMsgNotEnoughCash   = "Not enough cash"
	ErrMsgNotEnoughGrams  = "Not enough grams"
	ErrMsgItemNotOwnedErr = "You don't own that item"

	ErrMsgSlotLockedHTTP  = "That slot is locked"
	ErrMsgSlotEmptyHTTP   = "That slot is empty"
	ErrMsgNoFreeSlotHTTP  = "No free slot available"
	ErrMsgSlotsMaxedHTTP  = "All slots are already unlocked"
	ErrMsgInvalidSlotHTTP = "Invalid slot index"

	ErrMsgNotRipeHTTP        = "Plant is not ready to harvest"
	ErrMsgPlantDeadHTTP      = "Plant is dead"
	ErrMsgShearsRequiredHTTP = "Shears required to harvest"
	ErrMsgNoChargesHTTP      = "No charges left"
	ErrMsgNoPestHTTP         = "Plant has no pest"
	ErrMsgNoCountermeasure   = "No matching countermeasure in stock"

	ErrMsgResearchOwnedHTTP   = "Research already owned"
	ErrMsgResearchPrereqHTTP  = "Research prerequisites not met"
	ErrMsgNotEnoughHaze       = "Not enough haze points"
	ErrMsgOfferExpiredHTTP    = "Offer expired"
	ErrMsgNoPrestigeGainHTTP  = "Nothing to prestige for yet"
	ErrMsgInvalidInputGeneric = "Invalid request. Please check your inputs."
)
