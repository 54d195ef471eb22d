package pharmacy

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const MaxTermLength = 100

var (
	ErrMedicineRequired = errors.New("medicine name is required")
	ErrTermTooLong      = errors.New("search term exceeds maximum length")
)

// StockQuery is a case-insensitive substring search over medicine names,
// optionally narrowed to villages.
type StockQuery struct {
	medicine string
	village  string
}

func NewStockQuery(medicine, village string) (StockQuery, error) {
	medicine = strings.TrimSpace(medicine)
	village = strings.TrimSpace(village)
	if medicine == "" {
		return StockQuery{}, ErrMedicineRequired
	}
	if utf8.RuneCountInString(medicine) > MaxTermLength || utf8.RuneCountInString(village) > MaxTermLength {
		return StockQuery{}, ErrTermTooLong
	}
	return StockQuery{medicine: medicine, village: village}, nil
}

func (q StockQuery) Medicine() string { return q.medicine }
func (q StockQuery) Village() string  { return q.village }
func (q StockQuery) HasVillage() bool { return q.village != "" }

// EscapeLike makes a term safe to embed in an ILIKE pattern.
func EscapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}
