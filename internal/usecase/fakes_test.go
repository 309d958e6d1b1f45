package usecase

import (
	"context"
	"fmt"
	"io"

	"arunika/internal/domain/entity"
	domainservice "arunika/internal/domain/service"
	"arunika/pkg/errors"
)

// recorder collects a flat event trace shared by all fakes so tests can
// assert ordering across the store and the repositories.
type recorder struct {
	events []string
}

func (r *recorder) add(event string) {
	r.events = append(r.events, event)
}

type fakeStore struct {
	rec *recorder

	uploads []string
	deleted []string

	failUploadAfter int // fail the n-th upload onwards; 0 disables
	failDelete      map[string]error
}

func newFakeStore(rec *recorder) *fakeStore {
	return &fakeStore{rec: rec, failDelete: map[string]error{}}
}

func (s *fakeStore) UploadImage(ctx context.Context, file io.Reader, contentType string, preset domainservice.ImagePreset) (*domainservice.StoredObject, error) {
	return s.record(file)
}

func (s *fakeStore) UploadRaw(ctx context.Context, file io.Reader, contentType, filename string) (*domainservice.StoredObject, error) {
	return s.record(file)
}

func (s *fakeStore) record(file io.Reader) (*domainservice.StoredObject, error) {
	if s.failUploadAfter > 0 && len(s.uploads)+1 >= s.failUploadAfter {
		return nil, fmt.Errorf("storage unavailable")
	}
	if _, err := io.Copy(io.Discard, file); err != nil {
		return nil, err
	}

	id := fmt.Sprintf("objects/%d", len(s.uploads)+1)
	s.uploads = append(s.uploads, id)
	s.rec.add("upload:" + id)
	return &domainservice.StoredObject{
		URL:      "https://cdn.example.com/" + id,
		RemoteID: id,
	}, nil
}

func (s *fakeStore) Delete(ctx context.Context, remoteID string) error {
	if err, ok := s.failDelete[remoteID]; ok {
		return err
	}
	s.deleted = append(s.deleted, remoteID)
	s.rec.add("delete:" + remoteID)
	return nil
}

func (s *fakeStore) Close() error {
	return nil
}

type fakeProjectRepo struct {
	rec *recorder

	projects   map[string]*entity.Project
	nextID     int
	failCreate error
	failUpdate error
}

func newFakeProjectRepo(rec *recorder) *fakeProjectRepo {
	return &fakeProjectRepo{rec: rec, projects: map[string]*entity.Project{}}
}

func (r *fakeProjectRepo) Create(ctx context.Context, project *entity.Project) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	r.nextID++
	project.ID = fmt.Sprintf("project-%d", r.nextID)
	stored := *project
	r.projects[project.ID] = &stored
	r.rec.add("create:" + project.ID)
	return nil
}

func (r *fakeProjectRepo) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	project, ok := r.projects[id]
	if !ok {
		return nil, errors.NotFound("Project", nil)
	}
	copied := *project
	copied.Gallery = append([]entity.Asset(nil), project.Gallery...)
	return &copied, nil
}

func (r *fakeProjectRepo) GetBySlug(ctx context.Context, slug string) (*entity.Project, error) {
	for _, project := range r.projects {
		if project.Slug == slug {
			copied := *project
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Project", nil)
}

func (r *fakeProjectRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Project, int64, error) {
	var out []*entity.Project
	for _, project := range r.projects {
		out = append(out, project)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProjectRepo) Update(ctx context.Context, project *entity.Project) error {
	if r.failUpdate != nil {
		return r.failUpdate
	}
	if _, ok := r.projects[project.ID]; !ok {
		return errors.NotFound("Project", nil)
	}
	stored := *project
	r.projects[project.ID] = &stored
	r.rec.add("update:" + project.ID)
	return nil
}

func (r *fakeProjectRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.projects[id]; !ok {
		return errors.NotFound("Project", nil)
	}
	delete(r.projects, id)
	r.rec.add("delete-record:" + id)
	return nil
}

type fakeServiceRepo struct {
	rec *recorder

	services   map[string]*entity.Service
	nextID     int
	failCreate error
	failUpdate error
}

func newFakeServiceRepo(rec *recorder) *fakeServiceRepo {
	return &fakeServiceRepo{rec: rec, services: map[string]*entity.Service{}}
}

func (r *fakeServiceRepo) Create(ctx context.Context, service *entity.Service) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	r.nextID++
	service.ID = fmt.Sprintf("service-%d", r.nextID)
	stored := *service
	r.services[service.ID] = &stored
	r.rec.add("create:" + service.ID)
	return nil
}

func (r *fakeServiceRepo) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	service, ok := r.services[id]
	if !ok {
		return nil, errors.NotFound("Service", nil)
	}
	copied := *service
	return &copied, nil
}

func (r *fakeServiceRepo) GetBySlug(ctx context.Context, slug string) (*entity.Service, error) {
	for _, service := range r.services {
		if service.Slug == slug {
			copied := *service
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Service", nil)
}

func (r *fakeServiceRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Service, int64, error) {
	var out []*entity.Service
	for _, service := range r.services {
		out = append(out, service)
	}
	return out, int64(len(out)), nil
}

func (r *fakeServiceRepo) Update(ctx context.Context, service *entity.Service) error {
	if r.failUpdate != nil {
		return r.failUpdate
	}
	if _, ok := r.services[service.ID]; !ok {
		return errors.NotFound("Service", nil)
	}
	stored := *service
	r.services[service.ID] = &stored
	r.rec.add("update:" + service.ID)
	return nil
}

func (r *fakeServiceRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.services[id]; !ok {
		return errors.NotFound("Service", nil)
	}
	delete(r.services, id)
	r.rec.add("delete-record:" + id)
	return nil
}

type fakeTeamMemberRepo struct {
	rec *recorder

	members    map[string]*entity.TeamMember
	nextID     int
	failCreate error
	failUpdate error
}

func newFakeTeamMemberRepo(rec *recorder) *fakeTeamMemberRepo {
	return &fakeTeamMemberRepo{rec: rec, members: map[string]*entity.TeamMember{}}
}

func (r *fakeTeamMemberRepo) Create(ctx context.Context, member *entity.TeamMember) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	r.nextID++
	member.ID = fmt.Sprintf("member-%d", r.nextID)
	stored := *member
	r.members[member.ID] = &stored
	r.rec.add("create:" + member.ID)
	return nil
}

func (r *fakeTeamMemberRepo) GetByID(ctx context.Context, id string) (*entity.TeamMember, error) {
	member, ok := r.members[id]
	if !ok {
		return nil, errors.NotFound("Team member", nil)
	}
	copied := *member
	return &copied, nil
}

func (r *fakeTeamMemberRepo) List(ctx context.Context, limit, offset int) ([]*entity.TeamMember, int64, error) {
	var out []*entity.TeamMember
	for _, member := range r.members {
		out = append(out, member)
	}
	return out, int64(len(out)), nil
}

func (r *fakeTeamMemberRepo) Update(ctx context.Context, member *entity.TeamMember) error {
	if r.failUpdate != nil {
		return r.failUpdate
	}
	if _, ok := r.members[member.ID]; !ok {
		return errors.NotFound("Team member", nil)
	}
	stored := *member
	r.members[member.ID] = &stored
	r.rec.add("update:" + member.ID)
	return nil
}

func (r *fakeTeamMemberRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.members[id]; !ok {
		return errors.NotFound("Team member", nil)
	}
	delete(r.members, id)
	r.rec.add("delete-record:" + id)
	return nil
}
