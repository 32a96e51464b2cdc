package service

import (
	"context"
	"slices"
	"sync"

	apperrors "taskflow/internal/errors"
	"taskflow/internal/model"
	"taskflow/internal/repository"
)

// TaskState is a snapshot of the task/project store.
type TaskState struct {
	Tasks          []model.Task     `json:"tasks"`
	Projects       []model.Project  `json:"projects"`
	CurrentProject *string          `json:"currentProject"`
	ViewMode       model.ViewMode   `json:"viewMode"`
	IsLoading      bool             `json:"isLoading"`
	Error          *apperrors.Error `json:"error"`
}

// TaskService manages projects and tasks over the local collections.
//
// Every mutation reads the stored collection, modifies it and writes it
// back without a version check, so concurrent mutations of the same
// collection are last-writer-wins.
type TaskService interface {
	Initialize(ctx context.Context)
	FetchTasks(ctx context.Context) error
	AddTask(ctx context.Context, input model.TaskInput) (*model.Task, error)
	UpdateTask(ctx context.Context, id string, patch model.TaskPatch) error
	DeleteTask(ctx context.Context, id string) error
	FetchProjects(ctx context.Context) error
	AddProject(ctx context.Context, input model.ProjectInput) (*model.Project, error)
	UpdateProject(ctx context.Context, id string, patch model.ProjectPatch) error
	DeleteProject(ctx context.Context, id string) error
	SetCurrentProject(ctx context.Context, id *string)
	SetViewMode(ctx context.Context, mode model.ViewMode) error
	ProjectTasks(projectID string) []model.Task
	ClearError()
	State() TaskState
}

type taskService struct {
	tasks    repository.TaskRepository
	projects repository.ProjectRepository
	slice    *repository.SliceRepository[repository.ViewSlice]
	session  SessionProvider
	rt       Runtime

	mu    sync.RWMutex
	state TaskState
}

// NewTaskService creates the task/project store. session is read when
// ownership has to be resolved.
func NewTaskService(
	tasks repository.TaskRepository,
	projects repository.ProjectRepository,
	slice *repository.SliceRepository[repository.ViewSlice],
	session SessionProvider,
	rt Runtime,
) TaskService {
	return &taskService{
		tasks:    tasks,
		projects: projects,
		slice:    slice,
		session:  session,
		rt:       rt,
		state: TaskState{
			Tasks:    []model.Task{},
			Projects: []model.Project{},
			ViewMode: model.ViewList,
		},
	}
}

// Initialize restores the persisted current project and view mode.
func (s *taskService) Initialize(ctx context.Context) {
	snapshot, ok := s.slice.Load(ctx)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentProject = snapshot.CurrentProject
	if snapshot.ViewMode.Valid() {
		s.state.ViewMode = snapshot.ViewMode
	}
}

func (s *taskService) FetchTasks(ctx context.Context) error {
	s.begin()
	s.rt.delay(s.rt.Latency.FetchTasks)

	tasks := s.tasks.List(ctx)

	s.mu.Lock()
	s.state.Tasks = tasks
	s.state.IsLoading = false
	s.mu.Unlock()
	return nil
}

func (s *taskService) AddTask(ctx context.Context, input model.TaskInput) (*model.Task, error) {
	s.begin()
	s.rt.delay(s.rt.Latency.AddTask)

	if input.Status == "" {
		input.Status = model.TaskStatusTodo
	}
	if input.Priority == "" {
		input.Priority = model.TaskPriorityMedium
	}
	if !input.Status.Valid() {
		return nil, s.fail("add task", apperrors.ErrInvalidStatus)
	}
	if !input.Priority.Valid() {
		return nil, s.fail("add task", apperrors.ErrInvalidPriority)
	}
	if input.CreatedBy == "" {
		input.CreatedBy = s.currentUserID()
	}

	now := s.rt.Now()
	task := model.Task{
		ID:          s.rt.newID(),
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		StartDate:   input.StartDate,
		DueDate:     input.DueDate,
		AssigneeID:  input.AssigneeID,
		ProjectID:   input.ProjectID,
		Progress:    input.Progress,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
		Subtasks:    []model.Subtask{},
		Tags:        []string{},
	}

	tasks := append(s.tasks.List(ctx), task)
	if err := s.tasks.SaveAll(ctx, tasks); err != nil {
		return nil, s.fail("add task", apperrors.Storage("TASKS_WRITE_FAILED", "Failed to create task", err))
	}

	s.mu.Lock()
	s.state.Tasks = tasks
	s.state.IsLoading = false
	s.mu.Unlock()
	return &task, nil
}

// UpdateTask merges patch into the task with id. An unknown id changes
// nothing and is not an error.
func (s *taskService) UpdateTask(ctx context.Context, id string, patch model.TaskPatch) error {
	s.begin()
	s.rt.delay(s.rt.Latency.UpdateTask)

	if patch.Status != nil && !patch.Status.Valid() {
		return s.fail("update task", apperrors.ErrInvalidStatus)
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return s.fail("update task", apperrors.ErrInvalidPriority)
	}

	tasks := s.tasks.List(ctx)
	for i := range tasks {
		if tasks[i].ID == id {
			patch.Apply(&tasks[i], s.rt.Now())
		}
	}

	if err := s.tasks.SaveAll(ctx, tasks); err != nil {
		return s.fail("update task", apperrors.Storage("TASKS_WRITE_FAILED", "Failed to update task", err))
	}

	s.mu.Lock()
	s.state.Tasks = tasks
	s.state.IsLoading = false
	s.mu.Unlock()
	return nil
}

func (s *taskService) DeleteTask(ctx context.Context, id string) error {
	s.begin()
	s.rt.delay(s.rt.Latency.DeleteTask)

	tasks := slices.DeleteFunc(s.tasks.List(ctx), func(t model.Task) bool {
		return t.ID == id
	})
	if err := s.tasks.SaveAll(ctx, tasks); err != nil {
		return s.fail("delete task", apperrors.Storage("TASKS_WRITE_FAILED", "Failed to delete task", err))
	}

	s.mu.Lock()
	s.state.Tasks = tasks
	s.state.IsLoading = false
	s.mu.Unlock()
	return nil
}

// FetchProjects loads the projects, seeding the demo data on first run, and
// selects the first project when none is selected.
func (s *taskService) FetchProjects(ctx context.Context) error {
	s.begin()
	s.rt.delay(s.rt.Latency.FetchProjects)

	projects := s.projects.List(ctx)
	if len(projects) == 0 {
		userID := s.currentUserID()
		if userID == DefaultUserID {
			s.rt.Log.Warn("seeding demo data without a session, owner is " + DefaultUserID)
		}

		demoProjects, demoTasks := bootstrapData(userID, s.rt.Now())
		if err := s.projects.SaveAll(ctx, demoProjects); err != nil {
			return s.fail("fetch projects", apperrors.Storage("PROJECTS_WRITE_FAILED", "Failed to fetch projects", err))
		}
		if err := s.tasks.SaveAll(ctx, demoTasks); err != nil {
			return s.fail("fetch projects", apperrors.Storage("TASKS_WRITE_FAILED", "Failed to fetch projects", err))
		}
		projects = demoProjects
	}

	s.mu.Lock()
	s.state.Projects = projects
	s.state.IsLoading = false
	selected := false
	if s.state.CurrentProject == nil && len(projects) > 0 {
		first := projects[0].ID
		s.state.CurrentProject = &first
		selected = true
	}
	s.mu.Unlock()

	if selected {
		s.persist(ctx)
	}
	return nil
}

func (s *taskService) AddProject(ctx context.Context, input model.ProjectInput) (*model.Project, error) {
	s.begin()
	s.rt.delay(s.rt.Latency.AddProject)

	ownerID := s.currentUserID()
	ownerName := "You"
	if profile := s.session.CurrentProfile(); profile != nil && profile.Name != "" {
		ownerName = profile.Name
	}

	now := s.rt.Now()
	project := model.Project{
		ID:          s.rt.newID(),
		Title:       input.Title,
		Description: input.Description,
		Color:       input.Color,
		Status:      model.ProjectStatusActive,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
		Tasks:       []model.Task{},
		Members:     []model.Member{{ID: ownerID, Name: ownerName, Role: model.RoleOwner}},
	}

	projects := append(s.projects.List(ctx), project)
	if err := s.projects.SaveAll(ctx, projects); err != nil {
		return nil, s.fail("add project", apperrors.Storage("PROJECTS_WRITE_FAILED", "Failed to create project", err))
	}

	s.mu.Lock()
	s.state.Projects = projects
	s.state.IsLoading = false
	s.mu.Unlock()
	return &project, nil
}

// UpdateProject merges patch into the project with id. An unknown id changes
// nothing and is not an error.
func (s *taskService) UpdateProject(ctx context.Context, id string, patch model.ProjectPatch) error {
	s.begin()
	s.rt.delay(s.rt.Latency.UpdateProject)

	projects := s.projects.List(ctx)
	for i := range projects {
		if projects[i].ID == id {
			patch.Apply(&projects[i], s.rt.Now())
		}
	}

	if err := s.projects.SaveAll(ctx, projects); err != nil {
		return s.fail("update project", apperrors.Storage("PROJECTS_WRITE_FAILED", "Failed to update project", err))
	}

	s.mu.Lock()
	s.state.Projects = projects
	s.state.IsLoading = false
	s.mu.Unlock()
	return nil
}

// DeleteProject removes the project and every task pointing at it. When the
// project was selected, the first remaining project becomes current.
func (s *taskService) DeleteProject(ctx context.Context, id string) error {
	s.begin()
	s.rt.delay(s.rt.Latency.DeleteProject)

	projects := slices.DeleteFunc(s.projects.List(ctx), func(p model.Project) bool {
		return p.ID == id
	})
	tasks := slices.DeleteFunc(s.tasks.List(ctx), func(t model.Task) bool {
		return t.ProjectID == id
	})

	// tasks first: a failed write must not leave tasks of a removed project
	if err := s.tasks.SaveAll(ctx, tasks); err != nil {
		return s.fail("delete project", apperrors.Storage("TASKS_WRITE_FAILED", "Failed to delete project", err))
	}
	if err := s.projects.SaveAll(ctx, projects); err != nil {
		return s.fail("delete project", apperrors.Storage("PROJECTS_WRITE_FAILED", "Failed to delete project", err))
	}

	s.mu.Lock()
	s.state.Projects = projects
	s.state.Tasks = tasks
	reselected := false
	if s.state.CurrentProject != nil && *s.state.CurrentProject == id {
		s.state.CurrentProject = nil
		if len(projects) > 0 {
			first := projects[0].ID
			s.state.CurrentProject = &first
		}
		reselected = true
	}
	s.state.IsLoading = false
	s.mu.Unlock()

	if reselected {
		s.persist(ctx)
	}
	return nil
}

func (s *taskService) SetCurrentProject(ctx context.Context, id *string) {
	if id != nil {
		selected := *id
		id = &selected
	}
	s.mu.Lock()
	s.state.CurrentProject = id
	s.mu.Unlock()
	s.persist(ctx)
}

func (s *taskService) SetViewMode(ctx context.Context, mode model.ViewMode) error {
	if !mode.Valid() {
		s.mu.Lock()
		s.state.Error = apperrors.ErrInvalidViewMode
		s.mu.Unlock()
		return apperrors.ErrInvalidViewMode
	}

	s.mu.Lock()
	s.state.ViewMode = mode
	s.mu.Unlock()
	s.persist(ctx)
	return nil
}

// ProjectTasks returns the loaded tasks of one project in stored order.
func (s *taskService) ProjectTasks(projectID string) []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := []model.Task{}
	for _, t := range s.state.Tasks {
		if t.ProjectID == projectID {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

func (s *taskService) ClearError() {
	s.mu.Lock()
	s.state.Error = nil
	s.mu.Unlock()
}

// State returns a snapshot. The task and project slices are copied, but the
// Subtasks, Tags and Members inside them are shared with the store and must
// not be modified in place.
func (s *taskService) State() TaskState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := s.state
	state.Tasks = slices.Clone(s.state.Tasks)
	state.Projects = slices.Clone(s.state.Projects)
	return state
}

func (s *taskService) currentUserID() string {
	if user := s.session.CurrentUser(); user != nil {
		return user.ID
	}
	return DefaultUserID
}

func (s *taskService) begin() {
	s.mu.Lock()
	s.state.IsLoading = true
	s.state.Error = nil
	s.mu.Unlock()
}

func (s *taskService) fail(action string, err *apperrors.Error) error {
	s.rt.Log.WithError(err.Unwrap()).WithField("action", action).Error(err.Message)

	s.mu.Lock()
	s.state.Error = err
	s.state.IsLoading = false
	s.mu.Unlock()
	return err
}

// persist saves the {currentProject, viewMode} snapshot. Failures are logged
// only.
func (s *taskService) persist(ctx context.Context) {
	s.mu.RLock()
	snapshot := repository.ViewSlice{CurrentProject: s.state.CurrentProject, ViewMode: s.state.ViewMode}
	s.mu.RUnlock()

	if err := s.slice.Save(ctx, snapshot); err != nil {
		s.rt.Log.WithError(err).Warn("persist view snapshot failed")
	}
}
