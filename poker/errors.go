package poker

import "errors"

var (
	// ErrInvalidRank is returned when a rank value is outside AceLow..Ace.
	ErrInvalidRank = errors.New("invalid rank")
	// ErrInvalidSuit is returned when a suit value is outside Clubs..Spades.
	ErrInvalidSuit = errors.New("invalid suit")
	// ErrInvalidHandType is returned when a hand type is outside HighCard..StraightFlush.
	ErrInvalidHandType = errors.New("invalid hand type")
	// ErrParse is returned for malformed card or hand strings.
	ErrParse = errors.New("parse error")
	// ErrInvalidHandSize is returned when evaluation is given fewer than 5 or more than 7 cards.
	ErrInvalidHandSize = errors.New("invalid hand size")
	// ErrDuplicateCard is returned when the same card appears twice in one evaluation.
	ErrDuplicateCard = errors.New("duplicate card")
	// ErrEmptyHandSet is returned when a showdown is requested with no hands.
	ErrEmptyHandSet = errors.New("empty hand set")
	// ErrInsufficientCards is returned when a hand cannot form a five card combination.
	ErrInsufficientCards = errors.New("insufficient cards")
	// ErrUnknownGame is returned by ParseGame for unrecognised names.
	ErrUnknownGame = errors.New("unknown game")
	// ErrNoLowGame is returned when a low hand is requested for a high-only game.
	ErrNoLowGame = errors.New("game has no low hand")
	// ErrCardNotInDeck is returned when removing a card the deck no longer holds.
	ErrCardNotInDeck = errors.New("card not in deck")
	// ErrNotEnoughCards is returned when dealing more cards than remain.
	ErrNotEnoughCards = errors.New("not enough cards in deck")
)
