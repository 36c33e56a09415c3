package httpx

import "net/http"

// Dashboard renders the landing screen: a welcome line and the navigation.
func (h *UIHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}
	data := NewTemplateData(r, PageMeta{
		Title:       "Dashboard",
		PageTitle:   "Welcome, " + sess.User.Username,
		CurrentPage: PageDashboard,
	}).Build()
	h.renderer.RenderPage(w, http.StatusOK, PageDashboard, data)
}

// Home redirects the root path to the dashboard; everything else under / is
// a 404.
func (h *UIHandlers) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.renderNotFound(w, r)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
