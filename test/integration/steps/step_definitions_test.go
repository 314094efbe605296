//go:build integration

package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fynora/backend/internal/application/usecase/auth"
	"github.com/fynora/backend/internal/application/usecase/budget"
	"github.com/fynora/backend/internal/application/usecase/client"
	"github.com/fynora/backend/internal/application/usecase/dashboard"
	"github.com/fynora/backend/internal/infra/server/router"
	"github.com/fynora/backend/internal/integration/adapters"
	"github.com/fynora/backend/internal/integration/cache"
	"github.com/fynora/backend/internal/integration/email"
	"github.com/fynora/backend/internal/integration/email/templates"
	"github.com/fynora/backend/internal/integration/entrypoint/controller"
	"github.com/fynora/backend/internal/integration/entrypoint/middleware"
	"github.com/fynora/backend/internal/integration/persistence"
	"github.com/fynora/backend/internal/integration/persistence/model"
	"github.com/fynora/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"
const defaultTestPassword = "DefaultPass123!"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri             string
	headers         map[string]string
	client          *http.Client
	response        *response
	db              *mock.Db
	serverPort      int
	accessToken     string
	refreshToken    string
	currentUserID   uuid.UUID
	currentClientID uuid.UUID
	currentBudgetID uuid.UUID
	lastEntityID    uuid.UUID
}

type response struct {
	status int
	body   any
	err    error
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"users":              &model.UserModel{},
			"refresh_tokens":     &model.RefreshTokenModel{},
			"clients":            &model.ClientModel{},
			"budgets":            &model.BudgetModel{},
			"budget_items":       &model.BudgetItemModel{},
			"budget_sequences":   &model.BudgetSequenceModel{},
			"transactions":       &model.TransactionModel{},
			"monthly_aggregates": &model.MonthlyAggregateModel{},
			"email_queue":        &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return nil, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Client setup steps
	ctx.Given(`^a client exists with name "([^"]*)" and email "([^"]*)"$`, test.aClientExistsWithNameAndEmail)
	ctx.Given(`^a client exists with name "([^"]*)" and no email$`, test.aClientExistsWithNameAndNoEmail)

	// Budget setup steps
	ctx.Given(`^a budget numbered "([^"]*)" exists for client "([^"]*)" with status "([^"]*)"$`, test.aBudgetExistsForClient)

	// Transaction setup steps
	ctx.Given(`^an? (income|expense) transaction "([^"]*)" of "([^"]*)" exists$`, test.aTransactionExists)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should be the current year budget number (\d+)$`, test.theResponseFieldShouldBeCurrentYearNumber)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.currentClientID = uuid.Nil
	t.currentBudgetID = uuid.Nil
	t.lastEntityID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			// Repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			clientRepo := persistence.NewClientRepository(testDB.DbConn)
			budgetRepo := persistence.NewBudgetRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			emailQueueRepo := persistence.NewEmailQueueRepository(testDB.DbConn)

			// Adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			dashboardCache := cache.NewDashboardCache(mock.NewRedis(), time.Minute, logger)
			emailService := email.NewService(emailQueueRepo)

			// Auth use cases
			loginUseCase := auth.NewLoginUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUseCase(tokenService)
			getCurrentUserUseCase := auth.NewGetCurrentUserUseCase(userRepo)
			updateProfileUseCase := auth.NewUpdateProfileUseCase(userRepo, passwordService)

			// Client use cases
			listClientsUseCase := client.NewListClientsUseCase(clientRepo)
			getClientUseCase := client.NewGetClientUseCase(clientRepo)
			createClientUseCase := client.NewCreateClientUseCase(clientRepo)
			updateClientUseCase := client.NewUpdateClientUseCase(clientRepo)
			deleteClientUseCase := client.NewDeleteClientUseCase(clientRepo)

			// Budget use cases
			listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
			getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo)
			createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, clientRepo)
			updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, clientRepo)
			updateBudgetStatusUseCase := budget.NewUpdateBudgetStatusUseCase(budgetRepo, emailService, logger)
			deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

			// Dashboard use cases
			getDashboardUseCase := dashboard.NewGetDashboardUseCase(transactionRepo, clientRepo, budgetRepo, dashboardCache, logger)
			listRecentTransactionsUseCase := dashboard.NewListRecentTransactionsUseCase(transactionRepo)

			// Controllers
			healthController := controller.NewHealthController(
				func() bool { return testDB != nil && testDB.DbConn != nil },
				func() bool { return true },
			)

			authController := controller.NewAuthController(
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
				getCurrentUserUseCase,
				updateProfileUseCase,
			)

			clientController := controller.NewClientController(
				listClientsUseCase,
				getClientUseCase,
				createClientUseCase,
				updateClientUseCase,
				deleteClientUseCase,
			)

			budgetController := controller.NewBudgetController(
				listBudgetsUseCase,
				getBudgetUseCase,
				createBudgetUseCase,
				updateBudgetUseCase,
				updateBudgetStatusUseCase,
				deleteBudgetUseCase,
			)

			dashboardController := controller.NewDashboardController(
				getDashboardUseCase,
				listRecentTransactionsUseCase,
			)

			// Middleware
			loginRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				clientController,
				budgetController,
				dashboardController,
				loginRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			// The email worker runs against the same queue the status
			// transition writes to, so sent budgets produce real jobs.
			if renderer, err := templates.NewRenderer(); err == nil {
				worker := email.NewWorker(emailQueueRepo, email.NewMockEmailSender(), renderer, email.WorkerConfig{
					PollInterval: 100 * time.Millisecond,
					BatchSize:    10,
				})
				go worker.Start(context.Background())
			}

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, defaultTestPassword, "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		Company:      "Test Company",
		PasswordHash: hashPassword(password),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedInAs creates the user when missing and performs a real login so
// the captured tokens went through the whole stack.
func (t *testContext) iAmLoggedInAs(email string) error {
	t.startServer()

	var count int64
	if err := t.db.DbConn.Model(&model.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := t.createUser(email, defaultTestPassword, "Test User"); err != nil {
			return err
		}
	}

	payload := fmt.Sprintf(`{"email":%q,"password":%q}`, email, defaultTestPassword)
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/login", []byte(payload)); err != nil {
		return err
	}
	if t.response.status != http.StatusOK {
		return fmt.Errorf("login failed with status %d: %v", t.response.status, t.response.body)
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return errors.New("login response is not a JSON object")
	}
	t.accessToken, _ = body["access_token"].(string)
	t.refreshToken, _ = body["refresh_token"].(string)
	if user, ok := body["user"].(map[string]any); ok {
		if idStr, ok := user["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.currentUserID = id
			}
		}
	}
	t.response = nil
	return nil
}

func (t *testContext) aClientExistsWithNameAndEmail(name, email string) error {
	return t.createClient(name, email)
}

func (t *testContext) aClientExistsWithNameAndNoEmail(name string) error {
	return t.createClient(name, "")
}

func (t *testContext) createClient(name, email string) error {
	clientID := uuid.New()
	t.currentClientID = clientID

	clientModel := &model.ClientModel{
		ID:        clientID,
		Name:      name,
		Email:     email,
		Phone:     "(11) 99999-0000",
		Company:   name + " LTDA",
		Document:  "123.456.789-00",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	return t.db.DbConn.Create(clientModel).Error
}

func (t *testContext) aBudgetExistsForClient(number, clientName, status string) error {
	var clientModel model.ClientModel
	if err := t.db.DbConn.Where("name = ?", clientName).First(&clientModel).Error; err != nil {
		return fmt.Errorf("client %q not found: %w", clientName, err)
	}

	budgetID := uuid.New()
	t.currentBudgetID = budgetID

	unitPrice := decimal.NewFromInt(500)
	budgetModel := &model.BudgetModel{
		ID:         budgetID,
		Number:     number,
		ClientID:   clientModel.ID,
		Subtotal:   decimal.NewFromInt(1000),
		Discount:   decimal.Zero,
		Total:      decimal.NewFromInt(1000),
		Status:     status,
		ValidUntil: time.Now().AddDate(0, 1, 0),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
		Items: []model.BudgetItemModel{
			{
				ID:        uuid.New(),
				BudgetID:  budgetID,
				Name:      "Consultoria",
				Quantity:  2,
				UnitPrice: unitPrice,
				Total:     decimal.NewFromInt(1000),
				Position:  0,
			},
		},
	}
	if err := t.db.DbConn.Create(budgetModel).Error; err != nil {
		return err
	}

	// Keep the sequence counter consistent with the highest seeded number so
	// newly created budgets continue from it.
	year := time.Now().Year()
	var seq model.BudgetSequenceModel
	err := t.db.DbConn.Where("year = ?", year).First(&seq).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return t.db.DbConn.Create(&model.BudgetSequenceModel{Year: year, LastSeq: 1}).Error
	}
	if err != nil {
		return err
	}
	seq.LastSeq++
	return t.db.DbConn.Save(&seq).Error
}

func (t *testContext) aTransactionExists(transactionType, description, amount string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	category := "servico"
	if transactionType == "expense" {
		category = "software"
	}

	transactionModel := &model.TransactionModel{
		ID:          uuid.New(),
		Type:        transactionType,
		Category:    category,
		Description: description,
		Amount:      value,
		Date:        time.Now(),
		CreatedAt:   time.Now(),
	}
	return t.db.DbConn.Create(transactionModel).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{client_id}}", t.currentClientID.String())
	content = strings.ReplaceAll(content, "{{budget_id}}", t.currentBudgetID.String())
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastEntityID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastEntityID = id
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBeCurrentYearNumber(field string, seq int) error {
	expected := fmt.Sprintf("ORC-%d-%04d", time.Now().Year(), seq)
	return t.theResponseFieldShouldBe(field, expected)
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
