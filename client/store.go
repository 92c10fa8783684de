package client

import (
	"context"
	"errors"
	"sync"

	"github.com/jewelfoundation/admin-api/dto"
	"github.com/jewelfoundation/admin-api/models"
)

// Status is the lifecycle tag on a slice of entity state.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Slice holds one entity collection with its load status. Failed requests
// keep the previous items so the UI can still show stale data next to the
// error.
type Slice[T any] struct {
	Items  []T
	Status Status
	Err    string
}

// Reducers. Each returns the next state; the receiver is never mutated.

func (s Slice[T]) pending() Slice[T] {
	return Slice[T]{Items: s.Items, Status: StatusLoading}
}

func (s Slice[T]) rejected(err error) Slice[T] {
	return Slice[T]{Items: s.Items, Status: StatusFailed, Err: normalizeError(err)}
}

func (s Slice[T]) fetchFulfilled(items []T) Slice[T] {
	return Slice[T]{Items: items, Status: StatusSucceeded}
}

func (s Slice[T]) createFulfilled(item T) Slice[T] {
	items := make([]T, 0, len(s.Items)+1)
	items = append(items, s.Items...)
	items = append(items, item)
	return Slice[T]{Items: items, Status: StatusSucceeded}
}

func (s Slice[T]) updateFulfilled(item T, idOf func(T) uint) Slice[T] {
	items := make([]T, len(s.Items))
	copy(items, s.Items)
	for i := range items {
		if idOf(items[i]) == idOf(item) {
			items[i] = item
			break
		}
	}
	return Slice[T]{Items: items, Status: StatusSucceeded}
}

func (s Slice[T]) deleteFulfilled(id uint, idOf func(T) uint) Slice[T] {
	items := make([]T, 0, len(s.Items))
	for _, it := range s.Items {
		if idOf(it) != id {
			items = append(items, it)
		}
	}
	return Slice[T]{Items: items, Status: StatusSucceeded}
}

// normalizeError collapses any failure into the one string the UI renders.
func normalizeError(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// Store keeps per-entity state for an admin session. All slice transitions
// go through the reducers above under one mutex; reads get copies.
type Store struct {
	api *Client

	mu         sync.Mutex
	categories Slice[models.Category]
	projects   Slice[models.Project]
	donations  Slice[models.Donation]
	people     Slice[models.Person]
	partners   Slice[models.Partner]
}

// NewStore creates a store backed by the given API client. Every slice
// starts in StatusIdle.
func NewStore(api *Client) *Store {
	return &Store{
		api:        api,
		categories: Slice[models.Category]{Status: StatusIdle},
		projects:   Slice[models.Project]{Status: StatusIdle},
		donations:  Slice[models.Donation]{Status: StatusIdle},
		people:     Slice[models.Person]{Status: StatusIdle},
		partners:   Slice[models.Partner]{Status: StatusIdle},
	}
}

// Snapshot accessors

func (st *Store) Categories() Slice[models.Category] { return snapshot(st, &st.categories) }
func (st *Store) Projects() Slice[models.Project]    { return snapshot(st, &st.projects) }
func (st *Store) Donations() Slice[models.Donation]  { return snapshot(st, &st.donations) }
func (st *Store) People() Slice[models.Person]       { return snapshot(st, &st.people) }
func (st *Store) Partners() Slice[models.Partner]    { return snapshot(st, &st.partners) }

func snapshot[T any](st *Store, s *Slice[T]) Slice[T] {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := *s
	out.Items = make([]T, len(s.Items))
	copy(out.Items, s.Items)
	return out
}

// fetchSlice runs one fetch round trip: pending, then fulfilled or rejected.
func fetchSlice[T any](st *Store, s *Slice[T], fetch func() ([]T, error)) error {
	st.mu.Lock()
	*s = s.pending()
	st.mu.Unlock()

	items, err := fetch()

	st.mu.Lock()
	defer st.mu.Unlock()
	if err != nil {
		*s = s.rejected(err)
		return err
	}
	*s = s.fetchFulfilled(items)
	return nil
}

// createSlice creates a row then settles with the canonical row fetched back
// by id, so server-side defaults and joined fields land in the store rather
// than an echo of the request payload.
func createSlice[T any](st *Store, s *Slice[T], create func() (MutationResult, error), fetchOne func(id uint) (T, error)) (uint, error) {
	st.mu.Lock()
	*s = s.pending()
	st.mu.Unlock()

	result, err := create()
	var item T
	if err == nil {
		item, err = fetchOne(result.ID)
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if err != nil {
		*s = s.rejected(err)
		return 0, err
	}
	*s = s.createFulfilled(item)
	return result.ID, nil
}

// updateSlice updates a row then merges the canonical row back by id.
func updateSlice[T any](st *Store, s *Slice[T], id uint, idOf func(T) uint, update func() (MutationResult, error), fetchOne func(id uint) (T, error)) error {
	st.mu.Lock()
	*s = s.pending()
	st.mu.Unlock()

	_, err := update()
	var item T
	if err == nil {
		item, err = fetchOne(id)
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if err != nil {
		*s = s.rejected(err)
		return err
	}
	*s = s.updateFulfilled(item, idOf)
	return nil
}

// deleteSlice deletes a row then drops it from the items.
func deleteSlice[T any](st *Store, s *Slice[T], id uint, idOf func(T) uint, del func() (MutationResult, error)) error {
	st.mu.Lock()
	*s = s.pending()
	st.mu.Unlock()

	_, err := del()

	st.mu.Lock()
	defer st.mu.Unlock()
	if err != nil {
		*s = s.rejected(err)
		return err
	}
	*s = s.deleteFulfilled(id, idOf)
	return nil
}

func categoryID(c models.Category) uint { return c.ID }
func projectID(p models.Project) uint   { return p.ID }
func donationID(d models.Donation) uint { return d.ID }
func personID(p models.Person) uint     { return p.ID }
func partnerID(p models.Partner) uint   { return p.ID }

// Categories

func (st *Store) FetchCategories(ctx context.Context) error {
	return fetchSlice(st, &st.categories, func() ([]models.Category, error) {
		return st.api.ListCategories(ctx)
	})
}

func (st *Store) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (uint, error) {
	return createSlice(st, &st.categories,
		func() (MutationResult, error) { return st.api.CreateCategory(ctx, req) },
		func(id uint) (models.Category, error) { return st.api.GetCategory(ctx, id) })
}

func (st *Store) UpdateCategory(ctx context.Context, req dto.UpdateCategoryRequest) error {
	return updateSlice(st, &st.categories, req.ID, categoryID,
		func() (MutationResult, error) { return st.api.UpdateCategory(ctx, req) },
		func(id uint) (models.Category, error) { return st.api.GetCategory(ctx, id) })
}

func (st *Store) DeleteCategory(ctx context.Context, id uint) error {
	return deleteSlice(st, &st.categories, id, categoryID,
		func() (MutationResult, error) { return st.api.DeleteCategory(ctx, id) })
}

// Projects

func (st *Store) FetchProjects(ctx context.Context) error {
	return fetchSlice(st, &st.projects, func() ([]models.Project, error) {
		return st.api.ListProjects(ctx)
	})
}

func (st *Store) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (uint, error) {
	return createSlice(st, &st.projects,
		func() (MutationResult, error) { return st.api.CreateProject(ctx, req) },
		func(id uint) (models.Project, error) { return st.api.GetProject(ctx, id) })
}

func (st *Store) UpdateProject(ctx context.Context, req dto.UpdateProjectRequest) error {
	return updateSlice(st, &st.projects, req.ID, projectID,
		func() (MutationResult, error) { return st.api.UpdateProject(ctx, req) },
		func(id uint) (models.Project, error) { return st.api.GetProject(ctx, id) })
}

func (st *Store) DeleteProject(ctx context.Context, id uint) error {
	return deleteSlice(st, &st.projects, id, projectID,
		func() (MutationResult, error) { return st.api.DeleteProject(ctx, id) })
}

// Donations

// FetchDonations loads donations; projectID zero means all projects.
func (st *Store) FetchDonations(ctx context.Context, projectID uint) error {
	return fetchSlice(st, &st.donations, func() ([]models.Donation, error) {
		return st.api.ListDonations(ctx, projectID)
	})
}

func (st *Store) CreateDonation(ctx context.Context, req dto.CreateDonationRequest) (uint, error) {
	return createSlice(st, &st.donations,
		func() (MutationResult, error) { return st.api.CreateDonation(ctx, req) },
		func(id uint) (models.Donation, error) { return st.api.GetDonation(ctx, id) })
}

func (st *Store) UpdateDonation(ctx context.Context, req dto.UpdateDonationRequest) error {
	return updateSlice(st, &st.donations, req.ID, donationID,
		func() (MutationResult, error) { return st.api.UpdateDonation(ctx, req) },
		func(id uint) (models.Donation, error) { return st.api.GetDonation(ctx, id) })
}

func (st *Store) DeleteDonation(ctx context.Context, id uint) error {
	return deleteSlice(st, &st.donations, id, donationID,
		func() (MutationResult, error) { return st.api.DeleteDonation(ctx, id) })
}

// People

// FetchPeople loads people; personType empty means all types.
func (st *Store) FetchPeople(ctx context.Context, personType models.PersonType) error {
	return fetchSlice(st, &st.people, func() ([]models.Person, error) {
		return st.api.ListPeople(ctx, personType)
	})
}

func (st *Store) CreatePerson(ctx context.Context, req dto.CreatePersonRequest) (uint, error) {
	return createSlice(st, &st.people,
		func() (MutationResult, error) { return st.api.CreatePerson(ctx, req) },
		func(id uint) (models.Person, error) { return st.api.GetPerson(ctx, id) })
}

func (st *Store) UpdatePerson(ctx context.Context, req dto.UpdatePersonRequest) error {
	return updateSlice(st, &st.people, req.ID, personID,
		func() (MutationResult, error) { return st.api.UpdatePerson(ctx, req) },
		func(id uint) (models.Person, error) { return st.api.GetPerson(ctx, id) })
}

func (st *Store) DeletePerson(ctx context.Context, id uint) error {
	return deleteSlice(st, &st.people, id, personID,
		func() (MutationResult, error) { return st.api.DeletePerson(ctx, id) })
}

// Partners

func (st *Store) FetchPartners(ctx context.Context) error {
	return fetchSlice(st, &st.partners, func() ([]models.Partner, error) {
		return st.api.ListPartners(ctx)
	})
}

func (st *Store) CreatePartner(ctx context.Context, req dto.CreatePartnerRequest) (uint, error) {
	return createSlice(st, &st.partners,
		func() (MutationResult, error) { return st.api.CreatePartner(ctx, req) },
		func(id uint) (models.Partner, error) { return st.api.GetPartner(ctx, id) })
}

func (st *Store) UpdatePartner(ctx context.Context, req dto.UpdatePartnerRequest) error {
	return updateSlice(st, &st.partners, req.ID, partnerID,
		func() (MutationResult, error) { return st.api.UpdatePartner(ctx, req) },
		func(id uint) (models.Partner, error) { return st.api.GetPartner(ctx, id) })
}

func (st *Store) DeletePartner(ctx context.Context, id uint) error {
	return deleteSlice(st, &st.partners, id, partnerID,
		func() (MutationResult, error) { return st.api.DeletePartner(ctx, id) })
}
