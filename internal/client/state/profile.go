package state

import (
	"errors"
	"math"
	"sync"

	"github.com/mogligram/mogligram/internal/client/models"
)

// Field names one of the nine profile fields. The set is closed: screens
// pass these constants, so an unknown field is a construction-time mistake
// rather than a silent runtime no-op.
type Field string

const (
	FieldName        Field = "name"
	FieldBio         Field = "bio"
	FieldAge         Field = "age"
	FieldDateOfBirth Field = "dateOfBirth"
	FieldLocation    Field = "location"
	FieldPhone       Field = "phone"
	FieldCompany     Field = "company"
	FieldWebsite     Field = "website"
	FieldInterests   Field = "interests"
)

// Fields lists the nine profile fields in display order.
var Fields = []Field{
	FieldName, FieldBio, FieldAge, FieldDateOfBirth, FieldLocation,
	FieldPhone, FieldCompany, FieldWebsite, FieldInterests,
}

// ErrUnknownField is returned when a Field value outside the known set
// reaches UpdateField. That is a programming error at the call site, not a
// user-facing condition.
var ErrUnknownField = errors.New("unknown profile field")

// ProfilePatch is a partial profile update: nil means "leave the field
// alone", a non-nil pointer (including one to "") sets it.
type ProfilePatch struct {
	Name        *string
	Bio         *string
	Age         *string
	DateOfBirth *string
	Location    *string
	Phone       *string
	Company     *string
	Website     *string
	Interests   *string
}

// ProfileState holds the profile record and its derived completeness
// percentage. The percentage is recomputed inside every mutation, so readers
// can never observe a stale derivation.
type ProfileState struct {
	mu       sync.Mutex
	rec      models.ProfileRecord
	progress int
}

func NewProfileState() *ProfileState {
	return &ProfileState{}
}

// UpdateField sets a single field and recomputes the completeness
// percentage. Returns ErrUnknownField for a Field outside the known set;
// the record is left untouched in that case.
func (p *ProfileState) UpdateField(field Field, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch field {
	case FieldName:
		p.rec.Name = value
	case FieldBio:
		p.rec.Bio = value
	case FieldAge:
		p.rec.Age = value
	case FieldDateOfBirth:
		p.rec.DateOfBirth = value
	case FieldLocation:
		p.rec.Location = value
	case FieldPhone:
		p.rec.Phone = value
	case FieldCompany:
		p.rec.Company = value
	case FieldWebsite:
		p.rec.Website = value
	case FieldInterests:
		p.rec.Interests = value
	default:
		return ErrUnknownField
	}

	p.progress = progressOf(p.rec)
	return nil
}

// Update merges a partial record and recomputes the percentage once after
// the merge, not once per field. An empty patch leaves everything unchanged
// (the recompute is idempotent).
func (p *ProfileState) Update(patch ProfilePatch) {
	p.mu.Lock()
	defer p.mu.Unlock()

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&p.rec.Name, patch.Name)
	apply(&p.rec.Bio, patch.Bio)
	apply(&p.rec.Age, patch.Age)
	apply(&p.rec.DateOfBirth, patch.DateOfBirth)
	apply(&p.rec.Location, patch.Location)
	apply(&p.rec.Phone, patch.Phone)
	apply(&p.rec.Company, patch.Company)
	apply(&p.rec.Website, patch.Website)
	apply(&p.rec.Interests, patch.Interests)

	p.progress = progressOf(p.rec)
}

// Hydrate replaces the profile wholesale with a record restored from the
// persistent store.
func (p *ProfileState) Hydrate(rec models.ProfileRecord) {
	p.mu.Lock()
	p.rec = rec
	p.progress = progressOf(rec)
	p.mu.Unlock()
}

// Clear resets the profile to the empty default.
func (p *ProfileState) Clear() {
	p.mu.Lock()
	p.rec = models.ProfileRecord{}
	p.progress = 0
	p.mu.Unlock()
}

// Current returns a copy of the record and the completeness percentage.
func (p *ProfileState) Current() (models.ProfileRecord, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rec, p.progress
}

// Progress returns the completeness percentage.
func (p *ProfileState) Progress() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.progress
}

// Value returns the current value of a single field, or "" for an unknown
// field.
func (p *ProfileState) Value(field Field) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch field {
	case FieldName:
		return p.rec.Name
	case FieldBio:
		return p.rec.Bio
	case FieldAge:
		return p.rec.Age
	case FieldDateOfBirth:
		return p.rec.DateOfBirth
	case FieldLocation:
		return p.rec.Location
	case FieldPhone:
		return p.rec.Phone
	case FieldCompany:
		return p.rec.Company
	case FieldWebsite:
		return p.rec.Website
	case FieldInterests:
		return p.rec.Interests
	}
	return ""
}

// progressOf computes round(100 * filled / total). Blank means empty after
// trimming; every field weighs the same.
func progressOf(rec models.ProfileRecord) int {
	filled := rec.FilledCount()
	return int(math.Round(float64(filled) * 100 / models.FieldCount))
}
