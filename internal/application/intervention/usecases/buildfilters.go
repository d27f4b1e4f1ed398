package usecases

import (
	"strconv"
	"strings"
	"time"

	"tag/internal/application/common/access"
	"tag/internal/application/intervention/dto"
	"tag/internal/domain/intervention"
	"tag/internal/domain/permission"
	"tag/internal/shared/authorization"
	"tag/internal/shared/biztime"
	"tag/internal/shared/errors"
	"tag/internal/shared/utils"
)

// FilterSpec is everything a listing needs: the predicate, the page and the
// result shape.
type FilterSpec struct {
	Filter     intervention.Filter
	Pagination utils.Pagination
	Include    intervention.Include
	Order      intervention.Order
}

// FilterBuilder turns a listing query into a FilterSpec for the caller.
type FilterBuilder struct {
	policy permission.Policy
	loc    *time.Location
}

func NewFilterBuilder(policy permission.Policy, loc *time.Location) *FilterBuilder {
	if loc == nil {
		loc = time.UTC
	}
	return &FilterBuilder{policy: policy, loc: loc}
}

// Build validates q and returns the FilterSpec for the live (isArchive=false) or
// archived listing. A caller limited to its own interventions is always
// narrowed to them, whatever q asks for.
func (b *FilterBuilder) Build(q dto.InterventionQuery, isArchive bool, actor authorization.Actor) (*FilterSpec, error) {
	scope, err := access.Scope(b.policy, actor, permission.ResourceIntervention, permission.ActionList)
	if err != nil {
		return nil, err
	}

	opts := []intervention.FilterOption{
		intervention.WithSearchTokens(searchTokens(q.Search)),
	}

	status, err := intervention.ParseStatusFilter(q.Status)
	if err != nil {
		return nil, errors.NewValidationError("Statut invalide", q.Status)
	}
	if status != nil {
		opts = append(opts, intervention.WithStatus(*status))
	}

	themeID, err := parseReferenceID(q.Theme, "Identifiant de thème invalide")
	if err != nil {
		return nil, err
	}
	if themeID != nil {
		opts = append(opts, intervention.WithTheme(*themeID))
	}

	communeID, err := parseReferenceID(q.Commune, "Identifiant de commune invalide")
	if err != nil {
		return nil, err
	}
	if communeID != nil {
		opts = append(opts, intervention.WithCommune(*communeID))
	}

	// dateQuestion* are the explicit names and win over the short aliases.
	questionFrom, questionTo := q.DateDebut, q.DateFin
	if q.DateQuestionDebut != "" {
		questionFrom = q.DateQuestionDebut
	}
	if q.DateQuestionFin != "" {
		questionTo = q.DateQuestionFin
	}
	questionRange, err := b.dayRange(questionFrom, questionTo)
	if err != nil {
		return nil, err
	}
	if !questionRange.IsZero() {
		opts = append(opts, intervention.WithQuestionDate(questionRange))
	}

	if isArchive {
		archiveRange, err := b.dayRange(q.DateArchivageDebut, q.DateArchivageFin)
		if err != nil {
			return nil, err
		}
		if !archiveRange.IsZero() {
			opts = append(opts, intervention.WithArchiveDate(archiveRange))
		}
	}

	if scope == permission.ScopeOwn {
		opts = append(opts, intervention.WithDemandeur(actor.UserID))
	}

	order, err := parseOrder(q.Sort, q.Order)
	if err != nil {
		return nil, err
	}

	return &FilterSpec{
		Filter:     intervention.NewFilter(isArchive, opts...),
		Pagination: utils.ValidatePagination(atoiOrZero(q.Page), atoiOrZero(q.Limit)),
		Include:    intervention.DefaultInclude(),
		Order:      order,
	}, nil
}

func searchTokens(search string) []string {
	search = strings.TrimSpace(search)
	if search == "" {
		return nil
	}
	return strings.Fields(utils.FoldLower(search))
}

func parseReferenceID(value, message string) (*uint, error) {
	value = strings.TrimSpace(value)
	if value == "" || value == "all" {
		return nil, nil
	}
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil || id == 0 {
		return nil, errors.NewValidationError(message, value)
	}
	v := uint(id)
	return &v, nil
}

// dayRange converts calendar days to [00:00:00.000, 23:59:59.999] in the
// business timezone.
func (b *FilterBuilder) dayRange(from, to string) (intervention.DateRange, error) {
	var r intervention.DateRange
	if from != "" {
		day, err := biztime.ParseDay(from, b.loc)
		if err != nil {
			return r, errors.NewValidationError("Date invalide", from)
		}
		start := biztime.StartOfDayUTC(day, b.loc)
		r.From = &start
	}
	if to != "" {
		day, err := biztime.ParseDay(to, b.loc)
		if err != nil {
			return r, errors.NewValidationError("Date invalide", to)
		}
		end := biztime.EndOfDayUTC(day, b.loc)
		r.To = &end
	}
	return r, nil
}

func parseOrder(sort, direction string) (intervention.Order, error) {
	order := intervention.DefaultOrder()
	if sort != "" {
		field := intervention.OrderField(sort)
		if !field.IsValid() {
			return order, errors.NewValidationError("Tri invalide", sort)
		}
		order.Field = field
	}
	switch strings.ToLower(direction) {
	case "":
	case "asc":
		order.Desc = false
	case "desc":
		order.Desc = true
	default:
		return order, errors.NewValidationError("Ordre de tri invalide", direction)
	}
	return order, nil
}

func atoiOrZero(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}
