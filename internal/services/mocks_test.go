package services

import (
	"database/sql"

	"haolaplus/internal/models"
)

// Mocks à champs de fonctions : seules les méthodes utiles au test sont posées,
// toute autre méthode appelée fait paniquer le test.

type mockUserRepo struct {
	CreateTxFn              func(tx *sql.Tx, user *models.User) error
	GetByIDFn               func(id int64) (*models.User, error)
	GetByEmailFn            func(email string) (*models.User, error)
	GetByTelephoneFn        func(telephone string) (*models.User, error)
	GetByUsernameFn         func(username string) (*models.User, error)
	EmailExistsFn           func(email string) (bool, error)
	TelephoneExistsFn       func(telephone string) (bool, error)
	UpdateFn                func(user *models.User) error
	UpdatePasswordFn        func(id int64, passwordHash string) error
	UpdatePasswordByEmailFn func(email, passwordHash string) error
	MarkEmailVerifiedFn     func(id int64) error
	MarkTelephoneVerifiedFn func(id int64) error
	SetStatusFn             func(id int64, status string) error
	SoftDeleteFn            func(id int64) error
}

func (m *mockUserRepo) CreateTx(tx *sql.Tx, user *models.User) error { return m.CreateTxFn(tx, user) }
func (m *mockUserRepo) GetByID(id int64) (*models.User, error)       { return m.GetByIDFn(id) }
func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	return m.GetByEmailFn(email)
}
func (m *mockUserRepo) GetByTelephone(telephone string) (*models.User, error) {
	return m.GetByTelephoneFn(telephone)
}
func (m *mockUserRepo) GetByUsername(username string) (*models.User, error) {
	return m.GetByUsernameFn(username)
}
func (m *mockUserRepo) EmailExists(email string) (bool, error) { return m.EmailExistsFn(email) }
func (m *mockUserRepo) TelephoneExists(telephone string) (bool, error) {
	return m.TelephoneExistsFn(telephone)
}
func (m *mockUserRepo) Update(user *models.User) error { return m.UpdateFn(user) }
func (m *mockUserRepo) UpdatePassword(id int64, passwordHash string) error {
	return m.UpdatePasswordFn(id, passwordHash)
}
func (m *mockUserRepo) UpdatePasswordByEmail(email, passwordHash string) error {
	return m.UpdatePasswordByEmailFn(email, passwordHash)
}
func (m *mockUserRepo) MarkEmailVerified(id int64) error     { return m.MarkEmailVerifiedFn(id) }
func (m *mockUserRepo) MarkTelephoneVerified(id int64) error { return m.MarkTelephoneVerifiedFn(id) }
func (m *mockUserRepo) SetStatus(id int64, status string) error {
	return m.SetStatusFn(id, status)
}
func (m *mockUserRepo) SoftDelete(id int64) error { return m.SoftDeleteFn(id) }

type mockResetCodeRepo struct {
	ReplaceFn   func(email, code string) (*models.ResetCodePassword, error)
	GetByCodeFn func(code string) (*models.ResetCodePassword, error)
	DeleteFn    func(id int64) error
}

func (m *mockResetCodeRepo) Replace(email, code string) (*models.ResetCodePassword, error) {
	return m.ReplaceFn(email, code)
}
func (m *mockResetCodeRepo) GetByCode(code string) (*models.ResetCodePassword, error) {
	return m.GetByCodeFn(code)
}
func (m *mockResetCodeRepo) Delete(id int64) error { return m.DeleteFn(id) }

type mockSmsRepo struct {
	CreateTxFn        func(tx *sql.Tx, v *models.SmsVerification) error
	DeleteByUserTxFn  func(tx *sql.Tx, userID int64) error
	ReplaceFn         func(v *models.SmsVerification) error
	DeleteByUserFn    func(userID int64) error
	GetLatestByUserFn func(userID int64) (*models.SmsVerification, error)
	MarkConsumedFn    func(id int64) error
	MarkExpiredFn     func(id int64) error
}

func (m *mockSmsRepo) CreateTx(tx *sql.Tx, v *models.SmsVerification) error {
	return m.CreateTxFn(tx, v)
}
func (m *mockSmsRepo) DeleteByUserTx(tx *sql.Tx, userID int64) error {
	return m.DeleteByUserTxFn(tx, userID)
}
func (m *mockSmsRepo) Replace(v *models.SmsVerification) error { return m.ReplaceFn(v) }
func (m *mockSmsRepo) DeleteByUser(userID int64) error         { return m.DeleteByUserFn(userID) }
func (m *mockSmsRepo) GetLatestByUser(userID int64) (*models.SmsVerification, error) {
	return m.GetLatestByUserFn(userID)
}
func (m *mockSmsRepo) MarkConsumed(id int64) error { return m.MarkConsumedFn(id) }
func (m *mockSmsRepo) MarkExpired(id int64) error  { return m.MarkExpiredFn(id) }

type mockProvider struct {
	StartFn func(to string) error
	CheckFn func(to, code string) (bool, error)
}

func (m *mockProvider) StartVerification(to string) error { return m.StartFn(to) }
func (m *mockProvider) CheckVerification(to, code string) (bool, error) {
	return m.CheckFn(to, code)
}

type mockEmailService struct {
	SendVerificationFn func(email, link string) error
	SendResetCodeFn    func(email, code string) error
}

func (m *mockEmailService) SendVerificationEmail(email, link string) error {
	return m.SendVerificationFn(email, link)
}
func (m *mockEmailService) SendResetCodeEmail(email, code string) error {
	return m.SendResetCodeFn(email, code)
}

type mockTokenRepo struct {
	CreateFn       func(t *models.AccessToken) error
	GetByHashFn    func(tokenHash string) (*models.AccessToken, error)
	DeleteByUserFn func(userID int64) error
}

func (m *mockTokenRepo) Create(t *models.AccessToken) error { return m.CreateFn(t) }
func (m *mockTokenRepo) GetByHash(tokenHash string) (*models.AccessToken, error) {
	return m.GetByHashFn(tokenHash)
}
func (m *mockTokenRepo) DeleteByUser(userID int64) error { return m.DeleteByUserFn(userID) }

type mockPaysRepo struct {
	ListAllFn                 func() ([]*models.Pays, error)
	GetByIDFn                 func(id int64) (*models.Pays, error)
	CreateFn                  func(p *models.Pays) error
	UpdateFn                  func(p *models.Pays) error
	SoftDeleteFn              func(id int64) error
	GetByIDIncludingDeletedFn func(id int64) (*models.Pays, error)
}

func (m *mockPaysRepo) ListAll() ([]*models.Pays, error)        { return m.ListAllFn() }
func (m *mockPaysRepo) GetByID(id int64) (*models.Pays, error)  { return m.GetByIDFn(id) }
func (m *mockPaysRepo) Create(p *models.Pays) error             { return m.CreateFn(p) }
func (m *mockPaysRepo) Update(p *models.Pays) error             { return m.UpdateFn(p) }
func (m *mockPaysRepo) SoftDelete(id int64) error               { return m.SoftDeleteFn(id) }
func (m *mockPaysRepo) GetByIDIncludingDeleted(id int64) (*models.Pays, error) {
	return m.GetByIDIncludingDeletedFn(id)
}

type mockRegionRepo struct {
	ListAllFn    func() ([]*models.Region, error)
	ListByPaysFn func(paysID int64) ([]*models.Region, error)
	GetByIDFn    func(id int64) (*models.Region, error)
	CreateFn     func(reg *models.Region) error
	UpdateFn     func(reg *models.Region) error
	SoftDeleteFn func(id int64) error
}

func (m *mockRegionRepo) ListAll() ([]*models.Region, error) { return m.ListAllFn() }
func (m *mockRegionRepo) ListByPays(paysID int64) ([]*models.Region, error) {
	return m.ListByPaysFn(paysID)
}
func (m *mockRegionRepo) GetByID(id int64) (*models.Region, error) { return m.GetByIDFn(id) }
func (m *mockRegionRepo) Create(reg *models.Region) error          { return m.CreateFn(reg) }
func (m *mockRegionRepo) Update(reg *models.Region) error          { return m.UpdateFn(reg) }
func (m *mockRegionRepo) SoftDelete(id int64) error                { return m.SoftDeleteFn(id) }

type mockVilleRepo struct {
	ListAllFn      func() ([]*models.Ville, error)
	ListByRegionFn func(regionID int64) ([]*models.Ville, error)
	GetByIDFn      func(id int64) (*models.Ville, error)
	CreateFn       func(v *models.Ville) error
	UpdateFn       func(v *models.Ville) error
	SoftDeleteFn   func(id int64) error
}

func (m *mockVilleRepo) ListAll() ([]*models.Ville, error) { return m.ListAllFn() }
func (m *mockVilleRepo) ListByRegion(regionID int64) ([]*models.Ville, error) {
	return m.ListByRegionFn(regionID)
}
func (m *mockVilleRepo) GetByID(id int64) (*models.Ville, error) { return m.GetByIDFn(id) }
func (m *mockVilleRepo) Create(v *models.Ville) error            { return m.CreateFn(v) }
func (m *mockVilleRepo) Update(v *models.Ville) error            { return m.UpdateFn(v) }
func (m *mockVilleRepo) SoftDelete(id int64) error               { return m.SoftDeleteFn(id) }

type mockQuartierRepo struct {
	ListAllFn     func() ([]*models.Quartier, error)
	ListByVilleFn func(villeID int64) ([]*models.Quartier, error)
	GetByIDFn     func(id int64) (*models.Quartier, error)
	CreateFn      func(q *models.Quartier) error
	UpdateFn      func(q *models.Quartier) error
	SoftDeleteFn  func(id int64) error
}

func (m *mockQuartierRepo) ListAll() ([]*models.Quartier, error) { return m.ListAllFn() }
func (m *mockQuartierRepo) ListByVille(villeID int64) ([]*models.Quartier, error) {
	return m.ListByVilleFn(villeID)
}
func (m *mockQuartierRepo) GetByID(id int64) (*models.Quartier, error) { return m.GetByIDFn(id) }
func (m *mockQuartierRepo) Create(q *models.Quartier) error            { return m.CreateFn(q) }
func (m *mockQuartierRepo) Update(q *models.Quartier) error            { return m.UpdateFn(q) }
func (m *mockQuartierRepo) SoftDelete(id int64) error                  { return m.SoftDeleteFn(id) }

type mockLogRepo struct {
	CreateFn     func(entry *models.LogActivity) error
	ListAllFn    func() ([]*models.LogActivity, error)
	ListByUserFn func(userID int64) ([]*models.LogActivity, error)
}

func (m *mockLogRepo) Create(entry *models.LogActivity) error     { return m.CreateFn(entry) }
func (m *mockLogRepo) ListAll() ([]*models.LogActivity, error)    { return m.ListAllFn() }
func (m *mockLogRepo) ListByUser(userID int64) ([]*models.LogActivity, error) {
	return m.ListByUserFn(userID)
}
