package automatic

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const histogramBins = 10

// Results summarizes the scores of an autoplay run.
type Results struct {
	Scores []float64
	Mean   float64
	Stdev  float64
	Max    float64
}

func newResults(scores []float64) *Results {
	r := &Results{Scores: scores}
	if len(scores) == 0 {
		return r
	}
	r.Mean, r.Stdev = stat.MeanStdDev(scores, nil)
	if math.IsNaN(r.Stdev) {
		r.Stdev = 0
	}
	r.Max = floats.Max(scores)
	return r
}

func (r *Results) HandsPlayed() int {
	return len(r.Scores)
}

// Total is the sum of the scores.
func (r *Results) Total() int {
	return int(floats.Sum(r.Scores))
}

// zVal returns the two-tailed Z-value for a confidence interval given in
// percent.
func zVal(confidenceInterval float64) float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1}
	return dist.Quantile((1 + confidenceInterval/100) / 2)
}

// MeanInterval returns the half-width of the confidence interval around
// the mean score.
func (r *Results) MeanInterval(confidenceInterval float64) float64 {
	if len(r.Scores) < 2 {
		return 0
	}
	return zVal(confidenceInterval) * r.Stdev / math.Sqrt(float64(len(r.Scores)))
}

// Histogram draws the score distribution to w, width characters wide.
func (r *Results) Histogram(w io.Writer, width int) error {
	if len(r.Scores) == 0 {
		_, err := io.WriteString(w, "no hands played\n")
		return err
	}
	return histogram.Fprint(w, histogram.Hist(histogramBins, r.Scores), histogram.Linear(width))
}

func (r *Results) String() string {
	var ss strings.Builder
	fmt.Fprintf(&ss, "Hands played: %d\n", r.HandsPlayed())
	fmt.Fprintf(&ss, "Total score: %d\n", r.Total())
	fmt.Fprintf(&ss, "Mean score: %.3f ± %.3f (95%%)  Stdev: %.3f\n",
		r.Mean, r.MeanInterval(95), r.Stdev)
	fmt.Fprintf(&ss, "Best hand: %.0f\n", r.Max)
	return ss.String()
}
