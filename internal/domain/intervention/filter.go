package intervention

import "time"

// DateRange is an inclusive [From, To] bound. Either end may be open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

// Filter is the immutable predicate for intervention listings. Build it with
// NewFilter; the zero value matches every live intervention.
type Filter struct {
	archived     bool
	tokens       []string
	status       *Status
	themeID      *uint
	communeID    *uint
	demandeurID  *uint
	questionDate DateRange
	archiveDate  DateRange
}

type FilterOption func(*Filter)

// NewFilter creates a filter for the live (archived=false) or archived view.
func NewFilter(archived bool, opts ...FilterOption) Filter {
	f := Filter{archived: archived}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// WithSearchTokens requires every token to match at least one searchable column.
func WithSearchTokens(tokens []string) FilterOption {
	return func(f *Filter) {
		if len(tokens) == 0 {
			return
		}
		f.tokens = append([]string(nil), tokens...)
	}
}

func WithStatus(s Status) FilterOption {
	return func(f *Filter) { f.status = &s }
}

func WithTheme(id uint) FilterOption {
	return func(f *Filter) { f.themeID = &id }
}

func WithCommune(id uint) FilterOption {
	return func(f *Filter) { f.communeID = &id }
}

// WithDemandeur restricts results to one requester.
func WithDemandeur(id uint) FilterOption {
	return func(f *Filter) { f.demandeurID = &id }
}

func WithQuestionDate(r DateRange) FilterOption {
	return func(f *Filter) { f.questionDate = r }
}

// WithArchiveDate is ignored on live filters.
func WithArchiveDate(r DateRange) FilterOption {
	return func(f *Filter) {
		if f.archived {
			f.archiveDate = r
		}
	}
}

func (f Filter) Archived() bool { return f.archived }

func (f Filter) SearchTokens() []string {
	return append([]string(nil), f.tokens...)
}

func (f Filter) Status() *Status         { return copyPtr(f.status) }
func (f Filter) ThemeID() *uint          { return copyPtr(f.themeID) }
func (f Filter) CommuneID() *uint        { return copyPtr(f.communeID) }
func (f Filter) DemandeurID() *uint      { return copyPtr(f.demandeurID) }
func (f Filter) QuestionDate() DateRange { return f.questionDate }
func (f Filter) ArchiveDate() DateRange  { return f.archiveDate }

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Include selects which relations are eagerly attached to listed rows.
type Include struct {
	Commune   bool
	Theme     bool
	Demandeur bool
	Juriste   bool
}

// DefaultInclude attaches every relation shown in listings.
func DefaultInclude() Include {
	return Include{Commune: true, Theme: true, Demandeur: true, Juriste: true}
}

type OrderField string

const (
	OrderByDateQuestion OrderField = "date_question"
	OrderByDateReponse  OrderField = "date_reponse"
	OrderByTitre        OrderField = "titre"
	OrderByUrgent       OrderField = "urgent"
	OrderByID           OrderField = "id"
)

func (f OrderField) IsValid() bool {
	switch f {
	case OrderByDateQuestion, OrderByDateReponse, OrderByTitre, OrderByUrgent, OrderByID:
		return true
	}
	return false
}

// Order is the listing sort. Repositories append id as a final tie-breaker.
type Order struct {
	Field OrderField
	Desc  bool
}

func DefaultOrder() Order {
	return Order{Field: OrderByDateQuestion, Desc: true}
}

// ListOptions bounds a page fetch.
type ListOptions struct {
	Offset  int
	Limit   int
	Include Include
	Order   Order
}
