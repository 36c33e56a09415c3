package httpx

import (
	"net/http"

	domainauth "github.com/libreshelf/library-ui/internal/domain/auth"
	"github.com/libreshelf/library-ui/internal/http/validation"
	"github.com/libreshelf/library-ui/internal/ports"
)

// User administration. Routes are wrapped in the admin role guard; the
// service enforces the same rule again.

func userFormMeta(mode FormMode) PageMeta {
	title := "Add user"
	if mode == FormModeEdit {
		title = "Edit user"
	}
	return PageMeta{Title: title, PageTitle: title, CurrentPage: PageUsers}
}

// UserList renders all accounts.
func (h *UIHandlers) UserList(w http.ResponseWriter, r *http.Request) {
	h.renderUserList(w, r, "", http.StatusOK)
}

// UserNewForm renders the empty create form.
func (h *UIHandlers) UserNewForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireSession(w, r); !ok {
		return
	}
	data := NewTemplateData(r, userFormMeta(FormModeCreate)).
		With("Mode", string(FormModeCreate)).
		With("Roles", []domainauth.Role{domainauth.RoleAdmin, domainauth.RoleUser}).
		With("Form", userFormData(ports.BackendUser{})).
		Build()
	h.renderer.RenderPage(w, http.StatusOK, PageUserForm, data)
}

// UserEditForm renders the edit form prefilled from the backend.
func (h *UIHandlers) UserEditForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.renderNotFound(w, r)
		return
	}

	user, err := h.users.Get(r.Context(), sess, id)
	if err != nil {
		h.logger.Error("get user", "user_id", id, "error", err)
		h.renderNotFound(w, r)
		return
	}

	data := NewTemplateData(r, userFormMeta(FormModeEdit)).
		With("Mode", string(FormModeEdit)).
		With("Roles", []domainauth.Role{domainauth.RoleAdmin, domainauth.RoleUser}).
		With("Form", userFormData(user)).
		Build()
	h.renderer.RenderPage(w, http.StatusOK, PageUserForm, data)
}

// UserCreate handles the create form POST.
func (h *UIHandlers) UserCreate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[ports.BackendUser]{
		W:          w,
		R:          r,
		Mode:       FormModeCreate,
		Parser:     parseUserForm(0, true),
		Service:    h.users,
		Renderer:   h.renderer,
		Page:       PageUserForm,
		PageMeta:   userFormMeta(FormModeCreate),
		SuccessURL: "/users",
		FormData:   userFormData,
		ExtraData: map[string]any{
			"Roles": []domainauth.Role{domainauth.RoleAdmin, domainauth.RoleUser},
		},
	})
}

// UserUpdate handles the edit form POST.
func (h *UIHandlers) UserUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.renderNotFound(w, r)
		return
	}
	HandleForm(FormHandlerOpts[ports.BackendUser]{
		W:          w,
		R:          r,
		Mode:       FormModeEdit,
		Parser:     parseUserForm(id, false),
		Service:    h.users,
		Renderer:   h.renderer,
		Page:       PageUserForm,
		PageMeta:   userFormMeta(FormModeEdit),
		SuccessURL: "/users",
		FormData:   userFormData,
		ExtraData: map[string]any{
			"Roles": []domainauth.Role{domainauth.RoleAdmin, domainauth.RoleUser},
		},
	})
}

// UserDelete removes an account.
func (h *UIHandlers) UserDelete(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		h.renderNotFound(w, r)
		return
	}
	if id == sess.User.ID {
		h.renderUserList(w, r, "You cannot delete your own account.", http.StatusUnprocessableEntity)
		return
	}
	if err := h.users.Delete(r.Context(), sess, id); err != nil {
		h.logger.Error("delete user", "user_id", id, "error", err)
		h.renderUserList(w, r, serviceErrorMessage(err), http.StatusBadGateway)
		return
	}
	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

func (h *UIHandlers) renderUserList(w http.ResponseWriter, r *http.Request, errMsg string, status int) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	users, err := h.users.List(r.Context(), sess)
	if err != nil {
		h.logger.Error("list users", "error", err)
		if errMsg == "" {
			errMsg = serviceErrorMessage(err)
		}
		status = http.StatusBadGateway
	}

	data := NewTemplateData(r, PageMeta{Title: "Users", PageTitle: "Users", CurrentPage: PageUsers}).
		WithError(errMsg).
		With("Users", users).
		Build()
	h.renderer.RenderPage(w, status, PageUsers, data)
}

// parseUserForm validates the posted fields. The password is required on
// create and optional on edit (empty keeps the current one).
func parseUserForm(id int, passwordRequired bool) func(r *http.Request) (ports.BackendUser, map[string]string) {
	return func(r *http.Request) (ports.BackendUser, map[string]string) {
		_ = r.ParseForm()
		username := r.PostFormValue("username")
		password := r.PostFormValue("password")
		role := r.PostFormValue("role")

		v := validation.New().
			Validate("username", username, validation.Required("Username", 100)).
			Validate("role", role, validation.OneOf("Role",
				string(domainauth.RoleAdmin), string(domainauth.RoleUser)))
		if passwordRequired {
			v.Validate("password", password, validation.Required("Password", 255))
		} else {
			v.Validate("password", password, validation.Optional(validation.Required("Password", 255)))
		}

		return ports.BackendUser{
			ID:       id,
			Username: username,
			Password: password,
			Role:     domainauth.Role(role),
		}, v.Errors()
	}
}

func userFormData(user ports.BackendUser) map[string]any {
	// The password never round-trips into the form.
	return map[string]any{
		"ID":       user.ID,
		"Username": user.Username,
		"Role":     string(user.Role),
	}
}
