package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CardTestSuite struct {
	suite.Suite
}

func TestCardSuite(t *testing.T) {
	suite.Run(t, new(CardTestSuite))
}

func (s *CardTestSuite) TestSuitCharRoundTrip() {
	for _, suit := range Suits() {
		got, err := ParseSuit(suit.Char())
		s.Require().NoError(err)
		s.Equal(suit, got)
	}
}

func (s *CardTestSuite) TestSuitParseIsCaseInsensitive() {
	for ch, want := range map[rune]Suit{'c': Club, 's': Spade, 'h': Heart, 'd': Diamond} {
		got, err := ParseSuit(ch)
		s.Require().NoError(err)
		s.Equal(want, got)
	}
}

func (s *CardTestSuite) TestSuitIndexRoundTrip() {
	for i := 0; i < NumSuits; i++ {
		suit, err := SuitFromIndex(i)
		s.Require().NoError(err)
		s.Equal(i, suit.Index())
	}
}

func (s *CardTestSuite) TestSuitInvalid() {
	_, err := ParseSuit('Z')
	s.ErrorIs(err, ErrInvalidInput)
	_, err = SuitFromIndex(4)
	s.ErrorIs(err, ErrInvalidInput)
	_, err = SuitFromIndex(-1)
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *CardTestSuite) TestRankCharRoundTrip() {
	for _, rank := range Ranks() {
		got, err := ParseRank(rank.Char())
		s.Require().NoError(err)
		s.Equal(rank, got)
	}
}

func (s *CardTestSuite) TestRankParseIsCaseInsensitive() {
	for ch, want := range map[rune]Rank{'a': Ace, 't': Ten, 'j': Jack, 'q': Queen, 'k': King, '7': Seven} {
		got, err := ParseRank(ch)
		s.Require().NoError(err)
		s.Equal(want, got)
	}
}

func (s *CardTestSuite) TestRankIndexRoundTrip() {
	for i := 0; i < NumRanks; i++ {
		rank, err := RankFromIndex(i)
		s.Require().NoError(err)
		s.Equal(i, rank.Index())
	}
}

func (s *CardTestSuite) TestRankInvalid() {
	for _, ch := range []rune{'Z', '1', '0', 'x'} {
		_, err := ParseRank(ch)
		s.ErrorIs(err, ErrInvalidInput, "char %q", ch)
	}
	_, err := RankFromIndex(13)
	s.ErrorIs(err, ErrInvalidInput)
	_, err = RankFromIndex(52)
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *CardTestSuite) TestCardIndex() {
	s.Equal(0, NewCard(Club, Ace).Index())
	s.Equal(13, NewCard(Spade, Ace).Index())
	s.Equal(51, NewCard(Diamond, King).Index())
	s.Equal(2*13+9, NewCard(Heart, Ten).Index())
}

func (s *CardTestSuite) TestCardFromIndex() {
	for i := 0; i < Size; i++ {
		c, err := CardFromIndex(i)
		s.Require().NoError(err)
		s.Equal(i, c.Index())
	}
	_, err := CardFromIndex(52)
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *CardTestSuite) TestAllCardsOrder() {
	cards := AllCards()
	s.Len(cards, Size)
	for i, c := range cards {
		s.Equal(i, c.Index())
	}
	s.Equal(NewCard(Club, Ace), cards[0])
	s.Equal(NewCard(Club, King), cards[12])
	s.Equal(NewCard(Spade, Ace), cards[13])
}

func (s *CardTestSuite) TestParseCard() {
	testCases := []struct {
		code string
		want Card
	}{
		{"AS", NewCard(Spade, Ace)},
		{"th", NewCard(Heart, Ten)},
		{"2C", NewCard(Club, Two)},
		{" Kd ", NewCard(Diamond, King)},
	}
	for _, tc := range testCases {
		s.Run(tc.code, func() {
			got, err := ParseCard(tc.code)
			s.Require().NoError(err)
			s.Equal(tc.want, got)
		})
	}

	for _, bad := range []string{"", "A", "10S", "ZS", "AZ", "ASX"} {
		_, err := ParseCard(bad)
		s.ErrorIs(err, ErrInvalidInput, "code %q", bad)
	}
}

func (s *CardTestSuite) TestCardJSON() {
	b, err := json.Marshal([]Card{NewCard(Heart, Queen), NewCard(Club, Ten)})
	s.Require().NoError(err)
	s.JSONEq(`["QH","TC"]`, string(b))

	var cards []Card
	s.Require().NoError(json.Unmarshal([]byte(`["qh","9d"]`), &cards))
	s.Equal([]Card{NewCard(Heart, Queen), NewCard(Diamond, Nine)}, cards)

	var c Card
	s.Error(json.Unmarshal([]byte(`"1X"`), &c))

	_, err = json.Marshal(Card{Suit: 9, Rank: Ace})
	s.Error(err)
}
