package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/propline/property-sales-backend/internal/model"
	"github.com/propline/property-sales-backend/internal/repository"
)

var (
	floorRowCols = []string{"id", "name", "floor_number", "created_at", "updated_at"}
	shopRowCols  = []string{"id", "shop_number", "size", "status", "floor_id", "created_at", "updated_at"}
)

func newAdminHandler(t *testing.T) (*AdminHandler, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	h := NewAdminHandler(
		repository.NewFloorRepo(db),
		repository.NewShopRepo(db),
		repository.NewUserRepo(db),
		bcrypt.MinCost,
	)
	return h, mock, func() { db.Close() }
}

func jsonCtx(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateFloorReturnsCreated(t *testing.T) {
	h, mock, done := newAdminHandler(t)
	defer done()

	now := time.Now().UTC()
	mock.ExpectExec("INSERT INTO floors").
		WithArgs("Ground", 1).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT (.+) FROM floors WHERE id").
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows(floorRowCols).AddRow(1, "Ground", 1, now, now))

	c, rec := jsonCtx(echo.New(), http.MethodPost, "/admin/floors", `{"name":"Ground","floorNumber":1}`)
	require.NoError(t, h.CreateFloor(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var floor model.Floor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &floor))
	require.Equal(t, uint64(1), floor.ID)
	require.Equal(t, 1, floor.FloorNumber)
}

func TestCreateFloorRequiresNameAndNumber(t *testing.T) {
	h, _, done := newAdminHandler(t)
	defer done()

	c, rec := jsonCtx(echo.New(), http.MethodPost, "/admin/floors", `{"name":"  "}`)
	require.NoError(t, h.CreateFloor(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateShopMissingFieldsNeverHitsStore(t *testing.T) {
	h, mock, done := newAdminHandler(t)
	defer done()

	c, rec := jsonCtx(echo.New(), http.MethodPost, "/admin/shops", `{"shopNumber":"G-01"}`)
	require.NoError(t, h.CreateShop(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet()) // no statements issued
}

func TestCreateShopDanglingFloorIsValidationFailure(t *testing.T) {
	h, mock, done := newAdminHandler(t)
	defer done()

	mock.ExpectExec("INSERT INTO shops").
		WithArgs("G-01", "200sqft", uint64(404)).
		WillReturnError(errMySQLFK())

	c, rec := jsonCtx(echo.New(), http.MethodPost, "/admin/shops",
		`{"shopNumber":"G-01","size":"200sqft","floorId":404}`)
	require.NoError(t, h.CreateShop(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func errMySQLFK() error {
	return &mysqlFKError{}
}

type mysqlFKError struct{}

func (*mysqlFKError) Error() string {
	return "Error 1452 (23000): Cannot add or update a child row: a foreign key constraint fails"
}

func TestUpdateShopStatusRejectsUnknownValue(t *testing.T) {
	h, mock, done := newAdminHandler(t)
	defer done()

	e := echo.New()
	c, rec := jsonCtx(e, http.MethodPut, "/admin/shops/1/status", `{"status":"RESERVED"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.UpdateShopStatus(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet()) // invalid value never persisted
}

func TestUpdateShopStatusSoldThenListed(t *testing.T) {
	h, mock, done := newAdminHandler(t)
	defer done()

	now := time.Now().UTC()

	// PUT status -> SOLD
	mock.ExpectExec("UPDATE shops SET status").
		WithArgs(model.StatusSold, uint64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM shops WHERE id").
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows(shopRowCols).
			AddRow(1, "G-01", "200sqft", model.StatusSold, 1, now, now))
	// floor lookup enriching the shop.sold event
	mock.ExpectQuery("SELECT (.+) FROM floors WHERE id").
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows(floorRowCols).AddRow(1, "Ground", 1, now, now))

	e := echo.New()
	c, rec := jsonCtx(e, http.MethodPut, "/admin/shops/1/status", `{"status":"SOLD"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.UpdateShopStatus(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message     string     `json:"message"`
		UpdatedShop model.Shop `json:"updatedShop"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, model.StatusSold, body.UpdatedShop.Status)

	// GET /admin/shops/sold now returns the shop with its floor.
	mock.ExpectQuery("SELECT (.+) FROM shops s").
		WithArgs(model.StatusSold).
		WillReturnRows(sqlmock.NewRows(joinedCols).
			AddRow(1, "G-01", "200sqft", model.StatusSold, 1, now, now, 1, "Ground", 1, now, now))

	c2, rec2 := getCtx(e, "/admin/shops/sold")
	require.NoError(t, h.ListSoldShops(c2))
	require.Equal(t, http.StatusOK, rec2.Code)

	var sold []model.Shop
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &sold))
	require.Len(t, sold, 1)
	require.Equal(t, "G-01", sold[0].ShopNumber)
}

func TestDeleteFloorMissingIsNotFound(t *testing.T) {
	h, mock, done := newAdminHandler(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM floors WHERE id (.+) FOR UPDATE").
		WithArgs(uint64(9)).
		WillReturnRows(sqlmock.NewRows(floorRowCols))
	mock.ExpectRollback()

	e := echo.New()
	c, rec := jsonCtx(e, http.MethodDelete, "/admin/floors/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")
	require.NoError(t, h.DeleteFloor(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteFloorEchoesDeletedRecord(t *testing.T) {
	h, mock, done := newAdminHandler(t)
	defer done()

	now := time.Now().UTC()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM floors WHERE id (.+) FOR UPDATE").
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows(floorRowCols).AddRow(3, "Mezzanine", 2, now, now))
	mock.ExpectExec("DELETE FROM shops WHERE floor_id").
		WithArgs(uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM floors WHERE id").
		WithArgs(uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	e := echo.New()
	c, rec := jsonCtx(e, http.MethodDelete, "/admin/floors/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")
	require.NoError(t, h.DeleteFloor(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message      string      `json:"message"`
		DeletedFloor model.Floor `json:"deletedFloor"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Floor deleted successfully", body.Message)
	require.Equal(t, "Mezzanine", body.DeletedFloor.Name)
}

func TestCountEndpointsKeysAndConsistency(t *testing.T) {
	h, mock, done := newAdminHandler(t)
	defer done()

	e := echo.New()

	mock.ExpectQuery("SELECT COUNT(.+) FROM shops$").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(5))
	c, rec := getCtx(e, "/admin/shops/count")
	require.NoError(t, h.CountShops(c))
	var total map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &total))

	mock.ExpectQuery("SELECT COUNT(.+) FROM shops WHERE status").
		WithArgs(model.StatusAvailable).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(3))
	c, rec = getCtx(e, "/admin/shops/available/count")
	require.NoError(t, h.CountAvailableShops(c))
	var avail map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &avail))

	mock.ExpectQuery("SELECT COUNT(.+) FROM shops WHERE status").
		WithArgs(model.StatusSold).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(2))
	c, rec = getCtx(e, "/admin/shops/sold/count")
	require.NoError(t, h.CountSoldShops(c))
	var sold map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sold))

	require.Contains(t, total, "shops")
	require.Contains(t, avail, "availableShops")
	require.Contains(t, sold, "soldShops")
	require.LessOrEqual(t, avail["availableShops"]+sold["soldShops"], total["shops"])
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	h, mock, done := newAdminHandler(t)
	defer done()

	c, rec := jsonCtx(echo.New(), http.MethodPost, "/admin/users",
		`{"email":"new@example.com","password":"pw","role":"SUPERUSER"}`)
	require.NoError(t, h.CreateUser(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserDuplicateEmailConflicts(t *testing.T) {
	h, mock, done := newAdminHandler(t)
	defer done()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&mysqlDupError{})

	c, rec := jsonCtx(echo.New(), http.MethodPost, "/admin/users",
		`{"email":"dup@example.com","password":"pw","role":"ADMIN"}`)
	require.NoError(t, h.CreateUser(c))
	require.Equal(t, http.StatusConflict, rec.Code)
}

type mysqlDupError struct{}

func (*mysqlDupError) Error() string {
	return "Error 1062 (23000): Duplicate entry 'dup@example.com' for key 'uq_users_email'"
}

func TestUpdateUserRoleMissingUser(t *testing.T) {
	h, mock, done := newAdminHandler(t)
	defer done()

	mock.ExpectExec("UPDATE users SET role").
		WithArgs("SALES", uint64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs(uint64(8)).
		WillReturnRows(sqlmock.NewRows(userRowCols))

	e := echo.New()
	c, rec := jsonCtx(e, http.MethodPut, "/admin/users/8/role", `{"role":"SALES"}`)
	c.SetParamNames("id")
	c.SetParamValues("8")
	require.NoError(t, h.UpdateUserRole(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
