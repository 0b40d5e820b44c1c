package handler

import (
	"log/slog"
	"reflect"
	"strings"

	"github.com/bagdasarian/taskboard/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	templateService service.TaskTemplateService
	taskService     service.TaskService
	userService     service.UserService
	teamService     service.TeamService
	tagService      service.TagService
	validator       *validator.Validate
	log             *slog.Logger
}

func NewHandler(
	templateService service.TaskTemplateService,
	taskService service.TaskService,
	userService service.UserService,
	teamService service.TeamService,
	tagService service.TagService,
	log *slog.Logger,
) *Handler {
	validate := validator.New()
	// в сообщениях об ошибках поля называются так же, как в JSON
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		templateService: templateService,
		taskService:     taskService,
		userService:     userService,
		teamService:     teamService,
		tagService:      tagService,
		validator:       validate,
		log:             log,
	}
}

// Routes регистрирует все эндпоинты API на роутере
func (h *Handler) Routes(r chi.Router) {
	r.Route("/task-templates", func(r chi.Router) {
		r.Post("/", h.CreateTemplate)
		r.Get("/", h.ListTemplates)
		r.Get("/{id}", h.GetTemplate)
		r.Get("/{id}/preview", h.GetTemplatePreview)
		r.Put("/{id}", h.UpdateTemplate)
		r.Delete("/{id}", h.DeleteTemplate)
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", h.CreateTask)
		r.Get("/", h.ListTasks)
		r.Get("/{id}", h.GetTask)
		r.Put("/{id}", h.UpdateTask)
		r.Patch("/{id}/status", h.ChangeTaskStatus)
		r.Delete("/{id}", h.DeleteTask)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.CreateUser)
		r.Get("/", h.ListUsers)
		r.Get("/{id}", h.GetUser)
	})

	r.Get("/teams/{id}", h.GetTeam)

	r.Route("/tags", func(r chi.Router) {
		r.Post("/", h.CreateTag)
		r.Get("/", h.ListTags)
	})
}
