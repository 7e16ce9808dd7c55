package api

import (
	"io"
	"log"
	"strconv"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"

	"github.com/qaplayground/playground/internal/widgets"
)

// uploadStateFromForm restores both slots from the hidden fields the page
// round-trips. Errors are rendered once and not carried over.
func uploadStateFromForm(c *gin.Context) pongo2.Context {
	ctx := pongo2.Context{}
	if name := c.PostForm("document_name"); name != "" {
		size, _ := strconv.ParseInt(c.PostForm("document_size"), 10, 64)
		ctx["Document"] = &widgets.UploadedFile{Name: name, Size: size}
	}
	if name := c.PostForm("image_name"); name != "" {
		size, _ := strconv.ParseInt(c.PostForm("image_size"), 10, 64)
		ctx["Image"] = &widgets.UploadedFile{
			Name:    name,
			Size:    size,
			Preview: c.PostForm("image_preview"),
		}
	}
	return ctx
}

// handleUploadDocument validates the posted file against the document
// policy. On failure the slot stays empty and the error renders inline.
func (r *Router) handleUploadDocument(c *gin.Context) {
	ctx := uploadStateFromForm(c)

	header, err := c.FormFile("document")
	if err != nil {
		r.renderWidgetPage(c, "/upload", ctx)
		return
	}

	if err := r.docPolicy.Validate(header.Filename, header.Size); err != nil {
		ctx["DocumentError"] = err.Error()
		delete(ctx, "Document")
		r.renderWidgetPage(c, "/upload", ctx)
		return
	}

	ctx["Document"] = &widgets.UploadedFile{Name: header.Filename, Size: header.Size}
	r.renderWidgetPage(c, "/upload", ctx)
}

// handleUploadImage additionally reads the accepted file to build the
// inline preview data URI.
func (r *Router) handleUploadImage(c *gin.Context) {
	ctx := uploadStateFromForm(c)

	header, err := c.FormFile("image")
	if err != nil {
		r.renderWidgetPage(c, "/upload", ctx)
		return
	}

	if err := r.imgPolicy.Validate(header.Filename, header.Size); err != nil {
		ctx["ImageError"] = err.Error()
		delete(ctx, "Image")
		r.renderWidgetPage(c, "/upload", ctx)
		return
	}

	file, err := header.Open()
	if err != nil {
		ctx["ImageError"] = "Não foi possível ler a imagem"
		r.renderWidgetPage(c, "/upload", ctx)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("Failed to read uploaded image %q: %v", header.Filename, err)
		ctx["ImageError"] = "Não foi possível ler a imagem"
		r.renderWidgetPage(c, "/upload", ctx)
		return
	}

	ctx["Image"] = &widgets.UploadedFile{
		Name:    header.Filename,
		Size:    header.Size,
		Preview: widgets.PreviewDataURI(header.Filename, data),
	}
	r.renderWidgetPage(c, "/upload", ctx)
}

// handleUploadRemove clears one slot: file, error and preview together, so
// the same file can be selected again.
func (r *Router) handleUploadRemove(c *gin.Context) {
	ctx := uploadStateFromForm(c)
	switch c.PostForm("slot") {
	case "document":
		delete(ctx, "Document")
	case "image":
		delete(ctx, "Image")
	}
	r.renderWidgetPage(c, "/upload", ctx)
}

func (r *Router) handleUploadSubmit(c *gin.Context) {
	ctx := uploadStateFromForm(c)
	overlay := widgets.NewOverlay(widgets.UploadFields())

	values := map[string]string{}
	if doc, ok := ctx["Document"].(*widgets.UploadedFile); ok {
		values["document"] = doc.Name + " (" + widgets.FormatFileSize(doc.Size) + ")"
	}
	if img, ok := ctx["Image"].(*widgets.UploadedFile); ok {
		values["image"] = img.Name + " (" + widgets.FormatFileSize(img.Size) + ")"
	}

	ctx["OverlayRows"] = overlay.Rows(values)
	ctx["ShowOverlay"] = true
	r.renderWidgetPage(c, "/upload", ctx)
}
