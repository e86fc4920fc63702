package handler

import (
	"encoding/json"
	"net/http"

	"book-reader-server/internal/domain"
)

// DocumentHandler handles document-related HTTP requests
type DocumentHandler struct {
	documentService domain.DocumentService
	logger          domain.Logger
	maxFileSize     int64
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService domain.DocumentService, logger domain.Logger, maxFileSize int64) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		logger:          logger,
		maxFileSize:     maxFileSize,
	}
}

type uploadMetadataRequest struct {
	UserID  string   `json:"userId"`
	PDFKey  string   `json:"pdf_key"`
	PDFName string   `json:"pdf_name"`
	PDFURL  string   `json:"pdf_url"`
	PDFText []string `json:"pdf_text"`
}

type listRequest struct {
	UserID string `json:"userId"`
}

type deleteRequest struct {
	Key string `json:"key"`
}

// UploadPDF handles POST /upload-pdf. The multipart field "pdf" is forwarded
// to the object store and the resulting {url, key} pair returned.
func (h *DocumentHandler) UploadPDF(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)

	file, header, err := r.FormFile("pdf")
	if err != nil {
		writeError(w, http.StatusBadRequest, "A pdf file is required")
		return
	}
	defer file.Close()

	object, err := h.documentService.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		h.logger.Error("Failed to upload pdf", err, "filename", header.Filename)
		writeAppError(w, err)
		return
	}

	writeContent(w, http.StatusOK, object)
}

// UploadPDFMetadata handles POST /upload-pdf-metadata. The client extracted
// the per-page text locally; the whole row is written in one call.
func (h *DocumentHandler) UploadPDFMetadata(w http.ResponseWriter, r *http.Request) {
	var req uploadMetadataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	document := &domain.Document{
		Key:    req.PDFKey,
		UserID: req.UserID,
		Name:   req.PDFName,
		URL:    req.PDFURL,
		Pages:  req.PDFText,
	}

	if err := h.documentService.SaveMetadata(r.Context(), document); err != nil {
		h.logger.Error("Failed to save pdf metadata", err, "key", req.PDFKey, "user_id", req.UserID)
		writeAppError(w, err)
		return
	}

	writeContent(w, http.StatusOK, true)
}

// ListPDFs handles POST /list-pdfs.
func (h *DocumentHandler) ListPDFs(w http.ResponseWriter, r *http.Request) {
	var req listRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	documents, err := h.documentService.GetDocumentsByUserID(r.Context(), req.UserID)
	if err != nil {
		h.logger.Error("Failed to list pdfs", err, "user_id", req.UserID)
		writeAppError(w, err)
		return
	}

	// Ensure JSON is [] not null when there are no documents.
	if documents == nil {
		documents = make([]*domain.Document, 0)
	}

	writeContent(w, http.StatusOK, documents)
}

// DeletePDF handles POST /delete-pdf. Binary and metadata are deleted as a
// unit; the service deletes from the object store before the database.
func (h *DocumentHandler) DeletePDF(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.documentService.DeleteDocument(r.Context(), req.Key); err != nil {
		h.logger.Error("Failed to delete pdf", err, "key", req.Key)
		writeAppError(w, err)
		return
	}

	writeContent(w, http.StatusOK, true)
}
