package engine

// Deck and hand sizing. A game lasts exactly TurnCount turns: one card is
// drawn per turn until the deck is exhausted.
const (
	HandSize  = 4
	DeckSize  = 15
	TurnCount = DeckSize - (HandSize - 1)
)

// Deck tracks one player's cards over a game: the full list, the cards
// already played, and the current hand. Card identity is by name.
type Deck struct {
	Cards       []string
	UsedCards   map[string]bool
	CurrentHand []string

	rng uint64
}

// NewDeck builds a deck from a card list. The seed drives hand assignment
// and draws.
func NewDeck(cards []string, seed uint64) *Deck {
	if seed == 0 {
		seed = 1 // xorshift can't start at 0
	}
	d := &Deck{
		Cards:     make([]string, len(cards)),
		UsedCards: make(map[string]bool),
		rng:       seed,
	}
	copy(d.Cards, cards)
	return d
}

// xorshift64
func (d *Deck) nextRand() uint64 {
	x := d.rng
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	d.rng = x
	return x
}

func (d *Deck) randN(n uint64) uint64 {
	return d.nextRand() % n
}

// availableCards returns the cards not yet played, in deck order.
func (d *Deck) availableCards() []string {
	out := make([]string, 0, len(d.Cards))
	for _, card := range d.Cards {
		if !d.UsedCards[card] {
			out = append(out, card)
		}
	}
	return out
}

// upcomingCards returns the cards neither played nor currently in hand, in
// deck order.
func (d *Deck) upcomingCards() []string {
	inHand := make(map[string]bool, len(d.CurrentHand))
	for _, card := range d.CurrentHand {
		inHand[card] = true
	}
	out := make([]string, 0, len(d.Cards))
	for _, card := range d.Cards {
		if !d.UsedCards[card] && !inHand[card] {
			out = append(out, card)
		}
	}
	return out
}

// AssignHand draws a fresh hand of up to HandSize cards from the available
// cards and returns it.
func (d *Deck) AssignHand() []string {
	available := d.availableCards()

	// Partial Fisher-Yates: the first HandSize slots become the hand.
	n := len(available)
	for i := 0; i < n-1 && i < HandSize; i++ {
		j := i + int(d.randN(uint64(n-i)))
		available[i], available[j] = available[j], available[i]
	}
	if n > HandSize {
		available = available[:HandSize]
	}

	d.CurrentHand = available
	return d.CurrentHand
}

// DrawNewCard marks the played card as used and replaces it in the hand
// with a random upcoming card. It returns the replacement, or false when
// the deck has run dry.
func (d *Deck) DrawNewCard(playedCard string) (string, bool) {
	d.UsedCards[playedCard] = true

	for i, card := range d.CurrentHand {
		if card == playedCard {
			d.CurrentHand = append(d.CurrentHand[:i], d.CurrentHand[i+1:]...)
			break
		}
	}

	upcoming := d.upcomingCards()
	if len(upcoming) == 0 {
		return "", false
	}
	newCard := upcoming[d.randN(uint64(len(upcoming)))]
	d.CurrentHand = append(d.CurrentHand, newCard)
	return newCard, true
}

// InHand reports whether the named card is currently held.
func (d *Deck) InHand(cardName string) bool {
	for _, card := range d.CurrentHand {
		if card == cardName {
			return true
		}
	}
	return false
}
