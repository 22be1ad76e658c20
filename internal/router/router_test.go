package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"straysense/internal/router"
)

const (
	testSecret        = "0123456789abcdef0123456789abcdef"
	testAdminPassword = "super-secret-admin"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(router.NewRouter(router.Options{
		JWTSecret:     testSecret,
		AdminPassword: testAdminPassword,
		SessionTTL:    time.Hour,
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_AdoptionFlow(t *testing.T) {
	ts := newTestServer(t)

	// 1) Alta y login de dos usuarios
	signup(t, ts.URL, "ana@example.com", "pass1234", "Ana", "Gomez")
	signup(t, ts.URL, "beto@example.com", "pass1234", "Beto", "Diaz")
	anaToken := login(t, ts.URL, "ana@example.com", "pass1234")
	betoToken := login(t, ts.URL, "beto@example.com", "pass1234")

	// 2) Perfil requiere sesión
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/user/profile", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without token, got %d", st)
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/api/user/profile", anaToken, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 profile, got %d body=%s", st, string(body))
		}
		var resp struct {
			Email string `json:"email"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Email != "ana@example.com" {
			t.Fatalf("profile email mismatch: %s", resp.Email)
		}
	}

	// 3) Credencial de admin
	adminToken := adminVerify(t, ts.URL, testAdminPassword)

	// 4) Usuario común no pasa el gate de admin
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/admin/stats", anaToken, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 admin route with user token, got %d", st)
		}
	}

	// 5) Admin publica un animal
	animalID := createAnimal(t, ts.URL, adminToken, map[string]any{
		"name":    "Firulais",
		"species": "dog",
		"breed":   "mixed",
		"gender":  "male",
	})

	// 6) Listado público lo muestra
	{
		st, body := doReq(t, ts.URL, "GET", "/api/animals", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 public animals, got %d", st)
		}
		var items []map[string]any
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 {
			t.Fatalf("expected 1 available animal, got %d", len(items))
		}
	}

	// 7) Ana solicita adopción
	{
		st, body := doReq(t, ts.URL, "POST", "/api/adoptions", anaToken, map[string]any{
			"animal_id": animalID,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 adoption, got %d body=%s", st, string(body))
		}
	}

	// 8) El animal sale del listado público (pending_adoption)
	{
		st, body := doReq(t, ts.URL, "GET", "/api/animals", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var items []map[string]any
		_ = json.Unmarshal(body, &items)
		if len(items) != 0 {
			t.Fatalf("expected 0 available animals after request, got %d", len(items))
		}
	}

	// 9) Duplicado de Ana => 409; Beto recibe 400 (ya no está available)
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/adoptions", anaToken, map[string]any{
			"animal_id": animalID,
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicate adoption, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/adoptions", betoToken, map[string]any{
			"animal_id": animalID,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 animal not available, got %d", st)
		}
	}

	// 10) Ana ve su solicitud con datos del animal
	adoptionID := ""
	{
		st, body := doReq(t, ts.URL, "GET", "/api/user/adoptions", anaToken, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 my adoptions, got %d body=%s", st, string(body))
		}
		var items []struct {
			ID         string `json:"adoption_id"`
			Status     string `json:"status"`
			AnimalName string `json:"animal_name"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 || items[0].Status != "pending" {
			t.Fatalf("expected one pending adoption, body=%s", string(body))
		}
		if items[0].AnimalName != "Firulais" {
			t.Fatalf("expected enriched animal name, body=%s", string(body))
		}
		adoptionID = items[0].ID
	}

	// 11) Admin aprueba: fecha de aprobación y animal adopted
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/admin/adoptions/"+adoptionID+"/status", adminToken, map[string]any{
			"status":            "approved",
			"home_check_passed": true,
			"fee_paid":          true,
			"contract_signed":   true,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 approve, got %d body=%s", st, string(body))
		}
		var resp struct {
			Status       string  `json:"status"`
			ApprovalDate *string `json:"approval_date"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Status != "approved" || resp.ApprovalDate == nil {
			t.Fatalf("expected approved with approval_date, body=%s", string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/api/admin/animals", adminToken, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 admin animals, got %d", st)
		}
		var items []struct {
			ID     string `json:"animal_id"`
			Status string `json:"status"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 || items[0].Status != "adopted" {
			t.Fatalf("expected animal adopted, body=%s", string(body))
		}
	}

	// 12) Stats del dashboard
	{
		st, body := doReq(t, ts.URL, "GET", "/api/admin/stats", adminToken, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 stats, got %d", st)
		}
		var snap struct {
			TotalUsers             int `json:"totalUsers"`
			TotalAnimals           int `json:"totalAnimals"`
			ActiveAdoptionRequests int `json:"activeAdoptionRequests"`
		}
		_ = json.Unmarshal(body, &snap)
		if snap.TotalUsers != 2 || snap.TotalAnimals != 1 || snap.ActiveAdoptionRequests != 0 {
			t.Fatalf("unexpected stats body=%s", string(body))
		}
	}

	// 13) Logout invalida la sesión de inmediato
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/auth/logout", anaToken, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 logout, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/user/profile", anaToken, nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 after logout, got %d", st)
		}
	}
}

func TestHTTP_ShelterDeleteGuard(t *testing.T) {
	ts := newTestServer(t)
	adminToken := adminVerify(t, ts.URL, testAdminPassword)

	shelterID := ""
	{
		st, body := doReq(t, ts.URL, "POST", "/api/admin/shelters", adminToken, map[string]any{
			"name":    "Refugio Norte",
			"address": "Av. Siempre Viva 123",
			"city":    "Lima",
			"country": "PE",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create shelter, got %d body=%s", st, string(body))
		}
		var resp struct {
			ID string `json:"shelter_id"`
		}
		_ = json.Unmarshal(body, &resp)
		shelterID = resp.ID
	}

	animalID := createAnimal(t, ts.URL, adminToken, map[string]any{
		"name":       "Michi",
		"species":    "cat",
		"shelter_id": shelterID,
	})

	// Con animales asociados el borrado se rechaza
	{
		st, body := doReq(t, ts.URL, "DELETE", "/api/admin/shelters/"+shelterID, adminToken, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 delete shelter with animals, got %d body=%s", st, string(body))
		}
	}

	// Sin animales, el borrado pasa
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/admin/animals/"+animalID, adminToken, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete animal, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/admin/shelters/"+shelterID, adminToken, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete empty shelter, got %d", st)
		}
	}
}

func TestHTTP_StrayReportPromotion(t *testing.T) {
	ts := newTestServer(t)

	signup(t, ts.URL, "cami@example.com", "pass1234", "Cami", "Lopez")
	userToken := login(t, ts.URL, "cami@example.com", "pass1234")
	adminToken := adminVerify(t, ts.URL, testAdminPassword)

	reportID := ""
	{
		st, body := doReq(t, ts.URL, "POST", "/api/stray-reports", userToken, map[string]any{
			"description": "perro herido cerca del parque",
			"animal_type": "dog",
			"city":        "Lima",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 report, got %d body=%s", st, string(body))
		}
		var resp struct {
			ReportID string `json:"report_id"`
		}
		_ = json.Unmarshal(body, &resp)
		reportID = resp.ReportID
	}

	// Admin acepta el reporte
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/admin/reports/"+reportID+"/status", adminToken, map[string]any{
			"status": "accepted",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 accept report, got %d body=%s", st, string(body))
		}
		var resp struct {
			Status       string  `json:"status"`
			AcceptedDate *string `json:"accepted_date"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Status != "accepted" || resp.AcceptedDate == nil {
			t.Fatalf("expected accepted with date, body=%s", string(body))
		}
	}

	// Promoción a animal registrado deja la referencia inversa
	createAnimal(t, ts.URL, adminToken, map[string]any{
		"name":      "Rex",
		"species":   "dog",
		"report_id": reportID,
	})
	{
		st, body := doReq(t, ts.URL, "GET", "/api/stray-reports", userToken, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 my reports, got %d", st)
		}
		var items []struct {
			ProcessedAnimalID *string `json:"processed_animal_id"`
			FirstName         string  `json:"first_name"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 || items[0].ProcessedAnimalID == nil {
			t.Fatalf("expected report with processed_animal_id, body=%s", string(body))
		}
	}

	// La vista admin viene con el nombre del reportante
	{
		st, body := doReq(t, ts.URL, "GET", "/api/admin/reports", adminToken, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 admin reports, got %d", st)
		}
		var items []struct {
			FirstName string `json:"first_name"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 || items[0].FirstName != "Cami" {
			t.Fatalf("expected enriched reporter name, body=%s", string(body))
		}
	}
}

func TestHTTP_VaccinationSchedule(t *testing.T) {
	ts := newTestServer(t)

	signup(t, ts.URL, "dani@example.com", "pass1234", "Dani", "Ruiz")
	userToken := login(t, ts.URL, "dani@example.com", "pass1234")
	adminToken := adminVerify(t, ts.URL, testAdminPassword)

	animalID := createAnimal(t, ts.URL, adminToken, map[string]any{
		"name":    "Luna",
		"species": "cat",
	})

	vaccineID := ""
	{
		st, body := doReq(t, ts.URL, "POST", "/api/admin/vaccines", adminToken, map[string]any{
			"name":        "rabia",
			"description": "anual",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 vaccine type, got %d body=%s", st, string(body))
		}
		var resp struct {
			ID string `json:"vaccine_id"`
		}
		_ = json.Unmarshal(body, &resp)
		vaccineID = resp.ID
	}

	vaccinationID := ""
	{
		st, body := doReq(t, ts.URL, "POST", "/api/admin/vaccinations", adminToken, map[string]any{
			"animal_id":      animalID,
			"vaccine_id":     vaccineID,
			"scheduled_date": "2026-09-15",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 schedule, got %d body=%s", st, string(body))
		}
		var resp struct {
			ID string `json:"vaccination_id"`
		}
		_ = json.Unmarshal(body, &resp)
		vaccinationID = resp.ID
	}

	// Usuario autenticado consulta la agenda del animal
	{
		st, body := doReq(t, ts.URL, "GET", "/api/vaccinations/animals?animal_ids="+animalID, userToken, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 animal schedule, got %d body=%s", st, string(body))
		}
		var items []struct {
			CompletedDate *string `json:"completed_date"`
			VaccineName   string  `json:"vaccine_name"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 || items[0].CompletedDate != nil {
			t.Fatalf("expected one pending vaccination, body=%s", string(body))
		}
		if items[0].VaccineName != "rabia" {
			t.Fatalf("expected enriched vaccine name, body=%s", string(body))
		}
	}

	// Completar estampa la fecha
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/admin/vaccinations/"+vaccinationID+"/complete", adminToken, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 complete, got %d body=%s", st, string(body))
		}
		var resp struct {
			CompletedDate *string `json:"completed_date"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.CompletedDate == nil {
			t.Fatalf("expected completed_date set, body=%s", string(body))
		}
	}
}

func TestHTTP_SignupDuplicateEmail(t *testing.T) {
	ts := newTestServer(t)

	signup(t, ts.URL, "dup@example.com", "pass1234", "Uno", "Dos")

	st, _ := doReq(t, ts.URL, "POST", "/api/auth/signup", "", map[string]any{
		"email":     "dup@example.com",
		"password":  "otra",
		"firstName": "Tres",
		"lastName":  "Cuatro",
	})
	if st != http.StatusConflict {
		t.Fatalf("expected 409 duplicate email, got %d", st)
	}
}

func TestHTTP_AdminVerify_WrongPassword(t *testing.T) {
	ts := newTestServer(t)

	st, _ := doReq(t, ts.URL, "POST", "/api/admin/verify", "", map[string]any{
		"password": "nope",
	})
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 wrong admin password, got %d", st)
	}
}

func signup(t *testing.T, baseURL, email, password, first, last string) {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/auth/signup", "", map[string]any{
		"email":     email,
		"password":  password,
		"firstName": first,
		"lastName":  last,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 signup, got %d body=%s", st, string(body))
	}
}

func login(t *testing.T, baseURL, email, password string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/auth/login", "", map[string]any{
		"email":    email,
		"password": password,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
	}

	var resp struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Token == "" {
		t.Fatalf("login: missing token body=%s", string(body))
	}
	return resp.Token
}

func adminVerify(t *testing.T, baseURL, password string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/admin/verify", "", map[string]any{
		"password": password,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 admin verify, got %d body=%s", st, string(body))
	}

	var resp struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Token == "" {
		t.Fatalf("admin verify: missing token body=%s", string(body))
	}
	return resp.Token
}

func createAnimal(t *testing.T, baseURL, adminToken string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/admin/animals", adminToken, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create animal, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"animal_id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create animal: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
