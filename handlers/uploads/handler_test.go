package uploads

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"printcase-backend/testutils"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func designUploadRequest(t *testing.T, fieldName string) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, "design.png")
	assert.NoError(t, err)
	part.Write([]byte("png-bytes"))
	writer.Close()

	req, _ := http.NewRequest(http.MethodPost, "/api/upload/design", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadDesign_Success(t *testing.T) {
	original := uploadImage
	uploadImage = func(file *multipart.FileHeader) (string, error) {
		assert.Equal(t, "design.png", file.Filename)
		return "https://res.cloudinary.com/demo/designs/design_1.png", nil
	}
	defer func() { uploadImage = original }()

	r := testutils.SetupTestRouter()
	r.POST("/api/upload/design", UploadDesign)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, designUploadRequest(t, "image"))

	assert.Equal(t, http.StatusOK, resp.Code)

	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "https://res.cloudinary.com/demo/designs/design_1.png", body["url"])
}

func TestUploadDesign_MissingImageField(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/api/upload/design", UploadDesign)

	// The customizer posts the file under "image"; any other field is rejected
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, designUploadRequest(t, "file"))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUploadDesign_UploadFailure(t *testing.T) {
	original := uploadImage
	uploadImage = func(file *multipart.FileHeader) (string, error) {
		return "", errors.New("error uploading to Cloudinary: timeout")
	}
	defer func() { uploadImage = original }()

	r := testutils.SetupTestRouter()
	r.POST("/api/upload/design", UploadDesign)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, designUploadRequest(t, "image"))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
