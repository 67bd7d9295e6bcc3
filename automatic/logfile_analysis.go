package automatic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// AnalyzeLogFile reads an autoplay log and summarizes its scores.
func AnalyzeLogFile(filepath string) (*Results, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return AnalyzeLog(file)
}

// AnalyzeLog summarizes the scores of an autoplay log read from r.
func AnalyzeLog(r io.Reader) (*Results, error) {
	cr := csv.NewReader(r)
	// Record looks like:
	// handID,hand,words,score,total
	cr.FieldsPerRecord = 5

	var scores []float64
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if record[0] == "handID" {
			// this is the header line
			continue
		}
		score, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, fmt.Errorf("hand %v: bad score: %w", record[0], err)
		}
		scores = append(scores, float64(score))
	}
	return newResults(scores), nil
}
