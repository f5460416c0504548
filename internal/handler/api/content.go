// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/groeiboek/internal/apperr"
	"github.com/olegiv/groeiboek/internal/middleware"
	"github.com/olegiv/groeiboek/internal/model"
	"github.com/olegiv/groeiboek/internal/store"
)

// BilingualRequest is a Dutch/English pair in request bodies.
type BilingualRequest struct {
	NL string `json:"nl"`
	EN string `json:"en"`
}

func (b BilingualRequest) toModel() model.Bilingual {
	return model.Bilingual{NL: b.NL, EN: b.EN}
}

// ContentResponse represents any content entity in API responses. Title and
// Description are resolved to the negotiated language; the raw pair travels
// alongside for editors.
type ContentResponse struct {
	ID          int64           `json:"id"`
	ParentID    int64           `json:"parent_id,omitempty"`
	Number      int64           `json:"number,omitempty"`
	Title       string          `json:"title"`
	TitleRaw    model.Bilingual `json:"title_raw"`
	Description string          `json:"description,omitempty"`
	Position    int64           `json:"position,omitempty"`
	OrderIndex  int64           `json:"order_index,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func categoryToResponse(c store.Category, lang string) ContentResponse {
	title := model.Bilingual{NL: c.TitleNl, EN: c.TitleEn}
	desc := model.Bilingual{NL: c.DescriptionNl, EN: c.DescriptionEn}
	return ContentResponse{
		ID: c.ID, Number: c.CategoryNumber,
		Title: title.In(lang), TitleRaw: title, Description: desc.In(lang),
		CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt,
	}
}

func bookToResponse(b store.Book, lang string) ContentResponse {
	title := model.Bilingual{NL: b.TitleNl, EN: b.TitleEn}
	desc := model.Bilingual{NL: b.DescriptionNl, EN: b.DescriptionEn}
	return ContentResponse{
		ID: b.ID, ParentID: b.CategoryID,
		Title: title.In(lang), TitleRaw: title, Description: desc.In(lang),
		CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt,
	}
}

func chapterToResponse(c store.Chapter, lang string) ContentResponse {
	title := model.Bilingual{NL: c.TitleNl, EN: c.TitleEn}
	return ContentResponse{
		ID: c.ID, ParentID: c.BookID, Position: c.Position,
		Title: title.In(lang), TitleRaw: title,
		CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt,
	}
}

func sectionToResponse(s store.Section, lang string) ContentResponse {
	title := model.Bilingual{NL: s.TitleNl, EN: s.TitleEn}
	return ContentResponse{
		ID: s.ID, ParentID: s.ChapterID, OrderIndex: s.OrderIndex,
		Title: title.In(lang), TitleRaw: title,
		CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt,
	}
}

func paragraphToResponse(p store.Paragraph, lang string) ContentResponse {
	title := model.Bilingual{NL: p.TitleNl, EN: p.TitleEn}
	return ContentResponse{
		ID: p.ID, ParentID: p.SectionID, Number: p.ParagraphNumber,
		Title: title.In(lang), TitleRaw: title,
		CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	}
}

// contentRoutes registers the content hierarchy, versioning and review
// endpoints.
func (h *Handler) contentRoutes(r chi.Router) {
	r.Route("/content", func(r chi.Router) {
		r.Post("/categories", h.createCategory)
		r.Get("/categories", h.listCategories)
		r.Get("/categories/{id}", h.getCategory)
		r.Put("/categories/{id}", h.updateCategory)
		r.Delete("/categories/{id}", h.deleteCategory)
		r.Post("/categories/{id}/books", h.createBook)
		r.Get("/categories/{id}/books", h.listBooks)

		r.Get("/books/{id}", h.getBook)
		r.Put("/books/{id}", h.updateBook)
		r.Delete("/books/{id}", h.deleteBook)
		r.Post("/books/{id}/chapters", h.createChapter)
		r.Get("/books/{id}/chapters", h.listChapters)

		r.Get("/chapters/{id}", h.getChapter)
		r.Put("/chapters/{id}", h.updateChapter)
		r.Delete("/chapters/{id}", h.deleteChapter)
		r.Post("/chapters/{id}/sections", h.createSection)
		r.Get("/chapters/{id}/sections", h.listSections)

		r.Get("/sections/{id}", h.getSection)
		r.Put("/sections/{id}", h.updateSection)
		r.Delete("/sections/{id}", h.deleteSection)
		r.Post("/sections/{id}/publish", h.publishSection)
		r.Post("/sections/{id}/paragraphs", h.createParagraph)
		r.Get("/sections/{id}/paragraphs", h.listParagraphs)

		r.Get("/paragraphs/{id}", h.getParagraph)
		r.Put("/paragraphs/{id}", h.updateParagraph)
		r.Delete("/paragraphs/{id}", h.deleteParagraph)

		r.Post("/{entityType}/{id}/versions", h.createVersion)
		r.Get("/{entityType}/{id}/versions", h.listVersions)
		r.Get("/{entityType}/{id}/status", h.getStatus)
		r.Post("/{entityType}/{id}/submit", h.submitForReview)
		r.Get("/{entityType}/{id}/reviews", h.listReviews)

		r.Post("/reviews/{id}/approve", h.approveReview)
		r.Post("/reviews/{id}/reject", h.rejectReview)
		r.Post("/reviews/{id}/comments", h.addReviewComment)
		r.Get("/reviews/{id}/comments", h.listReviewComments)
		r.Put("/comments/{id}", h.updateReviewComment)
		r.Delete("/comments/{id}", h.deleteReviewComment)
	})
}

type contentRequest struct {
	Title           BilingualRequest `json:"title"`
	Description     BilingualRequest `json:"description"`
	Position        int64            `json:"position"`
	OrderIndex      int64            `json:"order_index"`
	ParagraphNumber int64            `json:"paragraph_number"`
}

func publishedOnly(r *http.Request) bool {
	return r.URL.Query().Get("published") == "true"
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	cat, err := h.content.CreateCategory(r.Context(), req.Title.toModel(), req.Description.toModel())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, categoryToResponse(cat, middleware.GetLang(r)))
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.content.ListCategories(r.Context(), publishedOnly(r))
	if err != nil {
		writeErr(w, err)
		return
	}
	lang := middleware.GetLang(r)
	out := make([]ContentResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryToResponse(c, lang))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	cat, err := h.content.GetCategory(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, categoryToResponse(cat, middleware.GetLang(r)))
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req contentRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	cat, err := h.content.UpdateCategory(r.Context(), id, req.Title.toModel(), req.Description.toModel())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, categoryToResponse(cat, middleware.GetLang(r)))
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := h.content.DeleteCategory(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	categoryID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req contentRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	book, err := h.content.CreateBook(r.Context(), categoryID, req.Title.toModel(), req.Description.toModel())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, bookToResponse(book, middleware.GetLang(r)))
}

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	categoryID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	books, err := h.content.ListBooks(r.Context(), categoryID, publishedOnly(r))
	if err != nil {
		writeErr(w, err)
		return
	}
	lang := middleware.GetLang(r)
	out := make([]ContentResponse, 0, len(books))
	for _, b := range books {
		out = append(out, bookToResponse(b, lang))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	book, err := h.content.GetBook(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, bookToResponse(book, middleware.GetLang(r)))
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req contentRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	book, err := h.content.UpdateBook(r.Context(), id, req.Title.toModel(), req.Description.toModel())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, bookToResponse(book, middleware.GetLang(r)))
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := h.content.DeleteBook(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) createChapter(w http.ResponseWriter, r *http.Request) {
	bookID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req contentRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	chapter, err := h.content.CreateChapter(r.Context(), bookID, req.Title.toModel(), req.Position)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, chapterToResponse(chapter, middleware.GetLang(r)))
}

func (h *Handler) listChapters(w http.ResponseWriter, r *http.Request) {
	bookID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	chapters, err := h.content.ListChapters(r.Context(), bookID, publishedOnly(r))
	if err != nil {
		writeErr(w, err)
		return
	}
	lang := middleware.GetLang(r)
	out := make([]ContentResponse, 0, len(chapters))
	for _, c := range chapters {
		out = append(out, chapterToResponse(c, lang))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) getChapter(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	chapter, err := h.content.GetChapter(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, chapterToResponse(chapter, middleware.GetLang(r)))
}

func (h *Handler) updateChapter(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req contentRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	chapter, err := h.content.UpdateChapter(r.Context(), id, req.Title.toModel(), req.Position)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, chapterToResponse(chapter, middleware.GetLang(r)))
}

func (h *Handler) deleteChapter(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := h.content.DeleteChapter(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) createSection(w http.ResponseWriter, r *http.Request) {
	chapterID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req contentRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	section, err := h.content.CreateSection(r.Context(), chapterID, req.Title.toModel(), req.OrderIndex)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, sectionToResponse(section, middleware.GetLang(r)))
}

func (h *Handler) listSections(w http.ResponseWriter, r *http.Request) {
	chapterID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	sections, err := h.content.ListSections(r.Context(), chapterID, publishedOnly(r))
	if err != nil {
		writeErr(w, err)
		return
	}
	lang := middleware.GetLang(r)
	out := make([]ContentResponse, 0, len(sections))
	for _, s := range sections {
		out = append(out, sectionToResponse(s, lang))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) getSection(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	section, err := h.content.GetSection(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, sectionToResponse(section, middleware.GetLang(r)))
}

func (h *Handler) updateSection(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req contentRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	section, err := h.content.UpdateSection(r.Context(), id, req.Title.toModel(), req.OrderIndex)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, sectionToResponse(section, middleware.GetLang(r)))
}

func (h *Handler) deleteSection(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := h.content.DeleteSection(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) createParagraph(w http.ResponseWriter, r *http.Request) {
	sectionID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req contentRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	paragraph, err := h.content.CreateParagraph(r.Context(), sectionID, req.Title.toModel(), req.ParagraphNumber)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, paragraphToResponse(paragraph, middleware.GetLang(r)))
}

func (h *Handler) listParagraphs(w http.ResponseWriter, r *http.Request) {
	sectionID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	paragraphs, err := h.content.ListParagraphs(r.Context(), sectionID, publishedOnly(r))
	if err != nil {
		writeErr(w, err)
		return
	}
	lang := middleware.GetLang(r)
	out := make([]ContentResponse, 0, len(paragraphs))
	for _, p := range paragraphs {
		out = append(out, paragraphToResponse(p, lang))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) getParagraph(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	paragraph, err := h.content.GetParagraph(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, paragraphToResponse(paragraph, middleware.GetLang(r)))
}

func (h *Handler) updateParagraph(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req contentRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	paragraph, err := h.content.UpdateParagraph(r.Context(), id, req.Title.toModel(), req.ParagraphNumber)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, paragraphToResponse(paragraph, middleware.GetLang(r)))
}

func (h *Handler) deleteParagraph(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := h.content.DeleteParagraph(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

// entityTypeBySegment maps plural URL segments to entity type names.
var entityTypeBySegment = map[string]string{
	"categories": model.EntityCategory,
	"books":      model.EntityBook,
	"chapters":   model.EntityChapter,
	"sections":   model.EntitySection,
	"paragraphs": model.EntityParagraph,
}

// entityTypeParam resolves the {entityType} URL segment.
func entityTypeParam(r *http.Request) (string, error) {
	seg := chi.URLParam(r, "entityType")
	t, ok := entityTypeBySegment[seg]
	if !ok {
		return "", apperr.Invalidf("unknown entity type %q", seg)
	}
	return t, nil
}

// VersionResponse represents a content version.
type VersionResponse struct {
	ID            int64           `json:"id"`
	VersionNumber int64           `json:"version_number"`
	Title         model.Bilingual `json:"title"`
	CreatedBy     int64           `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
}

func versionToResponse(v store.ContentVersion) VersionResponse {
	return VersionResponse{
		ID:            v.ID,
		VersionNumber: v.VersionNumber,
		Title:         model.Bilingual{NL: v.TitleNl, EN: v.TitleEn},
		CreatedBy:     v.CreatedBy,
		CreatedAt:     v.CreatedAt,
	}
}

func (h *Handler) createVersion(w http.ResponseWriter, r *http.Request) {
	entityType, err := entityTypeParam(r)
	if err != nil {
		writeErr(w, err)
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	version, err := h.content.CreateVersion(r.Context(), entityType, id, user.ID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, versionToResponse(version))
}

func (h *Handler) listVersions(w http.ResponseWriter, r *http.Request) {
	entityType, err := entityTypeParam(r)
	if err != nil {
		writeErr(w, err)
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	versions, err := h.content.ListVersions(r.Context(), entityType, id)
	if err != nil {
		writeErr(w, err)
		return
	}
	out := make([]VersionResponse, 0, len(versions))
	for _, v := range versions {
		out = append(out, versionToResponse(v))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	entityType, err := entityTypeParam(r)
	if err != nil {
		writeErr(w, err)
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	status, err := h.content.GetStatus(r.Context(), entityType, id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, struct {
		EntityType string    `json:"entity_type"`
		EntityID   int64     `json:"entity_id"`
		Status     string    `json:"status"`
		UpdatedAt  time.Time `json:"updated_at"`
	}{status.EntityType, status.EntityID, status.Status, status.UpdatedAt})
}
