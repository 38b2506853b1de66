package stats

import (
	"testing"

	"github.com/matryer/is"
)

func TestRunningStat(t *testing.T) {
	is := is.New(t)
	type tc struct {
		plies []int
		mean  float64
		stdev float64
		min   float64
		max   float64
	}
	cases := []tc{
		{[]int{5, 9, 9, 7, 9, 6, 8, 9}, 7.75, 1.58113883008419, 5, 9},
		{[]int{9, 9, 9}, 9, 0, 9, 9},
		{[]int{7}, 7, 0, 7, 7},
		{[]int{}, 0, 0, 0, 0},
	}
	for _, c := range cases {
		s := &Statistic{}
		for _, p := range c.plies {
			s.Push(float64(p))
		}
		is.True(FuzzyEqual(s.Mean(), c.mean))
		is.True(FuzzyEqual(s.Stdev(), c.stdev))
		is.Equal(s.Min(), c.min)
		is.Equal(s.Max(), c.max)
		is.Equal(s.Iterations(), len(c.plies))
	}
}

func TestConfidenceInterval(t *testing.T) {
	is := is.New(t)
	s := &Statistic{}
	for i := 0; i < 50; i++ {
		s.Push(1)
		s.Push(0)
	}
	lo, hi := s.ConfidenceInterval(95)
	is.True(lo < 0.5 && hi > 0.5)
	is.True(FuzzyEqual(hi-0.5, 0.5-lo))
	// 1.96 * sqrt(0.25253 / 100)
	is.True(hi-0.5 > 0.098 && hi-0.5 < 0.099)
}

func TestZVal(t *testing.T) {
	is := is.New(t)
	is.True(FuzzyEqual(ZVal(0), 0))
	is.True(ZVal(95) > 1.959 && ZVal(95) < 1.961)
	is.True(ZVal(99) > 2.575 && ZVal(99) < 2.576)
}
