package controller_test

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBOQGetAll(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "cerpschema"\."boqs"`).
		WillReturnRows(sqlmock.NewRows([]string{"boq_id", "title", "prepared_date", "remarks"}).
			AddRow(1, "Site A", "2024-01-01", "initial").
			AddRow(2, "Site B", "2024-02-01", nil))

	resp := doRequest(t, app, http.MethodGet, "/api/boq", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	boqs := decodeSlice(t, resp)
	require.Len(t, boqs, 2)
	assert.Equal(t, "Site A", boqs[0]["title"])
	assert.Nil(t, boqs[1]["remarks"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBOQGetByID(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "cerpschema"\."boqs" WHERE boq_id = \$1`).
		WithArgs("1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"boq_id", "title", "prepared_date", "remarks"}).
			AddRow(1, "Site A", "2024-01-01", "initial"))

	resp := doRequest(t, app, http.MethodGet, "/api/boq/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	boq := decodeMap(t, resp)
	assert.Equal(t, float64(1), boq["boq_id"])
	assert.Equal(t, "Site A", boq["title"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBOQGetByIDNotFound(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "cerpschema"\."boqs" WHERE boq_id = \$1`).
		WithArgs("999", 1).
		WillReturnRows(sqlmock.NewRows([]string{"boq_id", "title", "prepared_date", "remarks"}))

	resp := doRequest(t, app, http.MethodGet, "/api/boq/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "BOQ not found", decodeMap(t, resp)["error"])
}

func TestBOQCreate(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`INSERT INTO "cerpschema"\."boqs"`).
		WithArgs("Site A", "2024-01-01", "initial").
		WillReturnRows(sqlmock.NewRows([]string{"boq_id"}).AddRow(3))

	resp := doRequest(t, app, http.MethodPost, "/api/boq/add", map[string]interface{}{
		"title":         "Site A",
		"prepared_date": "2024-01-01",
		"remarks":       "initial",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["boq_id"])
	assert.Equal(t, "Site A", data["title"])
	assert.Equal(t, "2024-01-01", data["prepared_date"])
	assert.Equal(t, "initial", data["remarks"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBOQCreateWrappedPayload(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`INSERT INTO "cerpschema"\."boqs"`).
		WithArgs("Site B", "2024-02-01", "second").
		WillReturnRows(sqlmock.NewRows([]string{"boq_id"}).AddRow(4))

	resp := doRequest(t, app, http.MethodPost, "/api/boq/add", map[string]interface{}{
		"newnorms": map[string]interface{}{
			"title":         "Site B",
			"prepared_date": "2024-02-01",
			"remarks":       "second",
		},
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBOQCreateMissingFields(t *testing.T) {
	app, mock := newTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/boq/add", map[string]interface{}{
		"title": "Site A",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Missing required fields", body["error"])
	assert.NoError(t, mock.ExpectationsWereMet(), "no statement may run on validation failure")
}

func TestBOQUpdateFullReplace(t *testing.T) {
	app, mock := newTestApp(t)

	// absent prepared_date/remarks are written as NULL, not kept
	mock.ExpectQuery(`UPDATE "cerpschema"\."boqs" SET .+ WHERE boq_id = \$\d+ RETURNING \*`).
		WithArgs(nil, nil, "Renamed", "1").
		WillReturnRows(sqlmock.NewRows([]string{"boq_id", "title", "prepared_date", "remarks"}).
			AddRow(1, "Renamed", nil, nil))

	resp := doRequest(t, app, http.MethodPut, "/api/boq/1", map[string]interface{}{
		"title": "Renamed",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	boq := decodeMap(t, resp)
	assert.Equal(t, "Renamed", boq["title"])
	assert.Nil(t, boq["prepared_date"])
	assert.Nil(t, boq["remarks"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBOQUpdateNotFound(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`UPDATE "cerpschema"\."boqs" SET .+ RETURNING \*`).
		WillReturnRows(sqlmock.NewRows([]string{"boq_id", "title", "prepared_date", "remarks"}))

	resp := doRequest(t, app, http.MethodPut, "/api/boq/999", map[string]interface{}{
		"title": "nope",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "BOQ not found", decodeMap(t, resp)["error"])
}

func TestBOQDelete(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`DELETE FROM "cerpschema"\."boqs" WHERE boq_id = \$1 RETURNING \*`).
		WithArgs("1").
		WillReturnRows(sqlmock.NewRows([]string{"boq_id", "title", "prepared_date", "remarks"}).
			AddRow(1, "Site A", "2024-01-01", "initial"))

	resp := doRequest(t, app, http.MethodDelete, "/api/boq/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.Equal(t, "BOQ deleted successfully", body["message"])
	deleted := body["deletedBOQ"].(map[string]interface{})
	assert.Equal(t, "Site A", deleted["title"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBOQDeleteNotFound(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`DELETE FROM "cerpschema"\."boqs" WHERE boq_id = \$1 RETURNING \*`).
		WithArgs("999").
		WillReturnRows(sqlmock.NewRows([]string{"boq_id", "title", "prepared_date", "remarks"}))

	resp := doRequest(t, app, http.MethodDelete, "/api/boq/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "BOQ not found", decodeMap(t, resp)["error"])
}
