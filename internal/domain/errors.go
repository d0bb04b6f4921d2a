package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Catalog errors
	ErrMsgStrainNotFound     = "strain not found"
	ErrMsgItemNotFound       = "item not found"
	ErrMsgPestNotFound       = "pest not found"
	ErrMsgUpgradeNotFound    = "upgrade not found"
	ErrMsgResearchNotFound   = "research node not found"
	ErrMsgDifficultyNotFound = "difficulty not found"

	// Funds / resource errors
	ErrMsgInsufficientCash  = "not enough cash"
	ErrMsgInsufficientGrams = "not enough grams"

	// Slot errors
	ErrMsgSlotOccupied  = "slot is occupied"
	ErrMsgSlotLocked    = "slot is locked"
	ErrMsgSlotEmpty     = "slot is empty"
	ErrMsgNoFreeSlot    = "no free slot"
	ErrMsgSlotsMaxed    = "all slots unlocked"
	ErrMsgInvalidSlot   = "invalid slot index"

	// Plant action errors
	ErrMsgNotRipe          = "plant is not fully grown"
	ErrMsgPlantDead        = "plant health is depleted"
	ErrMsgShearsRequired   = "shears required to harvest"
	ErrMsgNoCharges        = "no charges available"
	ErrMsgNoPest           = "plant has no pest"
	ErrMsgWrongCountermeasure = "no matching countermeasure available"

	// Item errors
	ErrMsgItemNotOwned = "item not owned"

	// Research errors
	ErrMsgResearchOwned        = "research already owned"
	ErrMsgResearchPrereq       = "research prerequisites not met"
	ErrMsgInsufficientResearch = "not enough research points"

	// Market errors
	ErrMsgOfferNotFound = "offer not found"
	ErrMsgOfferExpired  = "offer expired"

	// Prestige errors
	ErrMsgNoPrestigeGain = "no prestige gain available"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors.
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Catalog errors
	ErrStrainNotFound     = errors.New(ErrMsgStrainNotFound)
	ErrItemNotFound       = errors.New(ErrMsgItemNotFound)
	ErrPestNotFound       = errors.New(ErrMsgPestNotFound)
	ErrUpgradeNotFound    = errors.New(ErrMsgUpgradeNotFound)
	ErrResearchNotFound   = errors.New(ErrMsgResearchNotFound)
	ErrDifficultyNotFound = errors.New(ErrMsgDifficultyNotFound)

	// Funds / resource errors
	ErrInsufficientCash  = errors.New(ErrMsgInsufficientCash)
	ErrInsufficientGrams = errors.New(ErrMsgInsufficientGrams)

	// Slot errors
	ErrSlotOccupied = errors.New(ErrMsgSlotOccupied)
	ErrSlotLocked   = errors.New(ErrMsgSlotLocked)
	ErrSlotEmpty    = errors.New(ErrMsgSlotEmpty)
	ErrNoFreeSlot   = errors.New(ErrMsgNoFreeSlot)
	ErrSlotsMaxed   = errors.New(ErrMsgSlotsMaxed)
	ErrInvalidSlot  = errors.New(ErrMsgInvalidSlot)

	// Plant action errors
	ErrNotRipe              = errors.New(ErrMsgNotRipe)
	ErrPlantDead            = errors.New(ErrMsgPlantDead)
	ErrShearsRequired       = errors.New(ErrMsgShearsRequired)
	ErrNoCharges            = errors.New(ErrMsgNoCharges)
	ErrNoPest               = errors.New(ErrMsgNoPest)
	ErrWrongCountermeasure  = errors.New(ErrMsgWrongCountermeasure)

	// Item errors
	ErrItemNotOwned = errors.New(ErrMsgItemNotOwned)

	// Research errors
	ErrResearchOwned        = errors.New(ErrMsgResearchOwned)
	ErrResearchPrereq       = errors.New(ErrMsgResearchPrereq)
	ErrInsufficientResearch = errors.New(ErrMsgInsufficientResearch)

	// Market errors
	ErrOfferNotFound = errors.New(ErrMsgOfferNotFound)
	ErrOfferExpired  = errors.New(ErrMsgOfferExpired)

	// Prestige errors
	ErrNoPrestigeGain = errors.New(ErrMsgNoPrestigeGain)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
