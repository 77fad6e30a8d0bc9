package handlers

import (
	"haolaplus/internal/models"
	"haolaplus/internal/services"
)

// Mocks à champs de fonctions, comme côté services : seules les méthodes
// utiles au test sont posées.

type mockUserService struct {
	RegisterFn                func(in services.RegisterInput) (*models.User, error)
	VerifyEmailFn             func(userID int64, signature string) error
	ResendEmailVerificationFn func(user *models.User) error
	ResendOTPFn               func(user *models.User) error
	EditUserFn                func(userID int64, in services.EditInput) (*models.User, error)
	LogoutFn                  func(userID int64) error
	RemoveFn                  func(userID int64) error
	SetStatusFn               func(userID int64, status string) error
	GetByIDFn                 func(id int64) (*models.User, error)
	GetByUsernameFn           func(username string) (*models.User, error)
	GetByTelephoneFn          func(telephone string) (*models.User, error)
}

func (m *mockUserService) Register(in services.RegisterInput) (*models.User, error) {
	return m.RegisterFn(in)
}
func (m *mockUserService) VerifyEmail(userID int64, signature string) error {
	return m.VerifyEmailFn(userID, signature)
}
func (m *mockUserService) ResendEmailVerification(user *models.User) error {
	return m.ResendEmailVerificationFn(user)
}
func (m *mockUserService) ResendOTP(user *models.User) error { return m.ResendOTPFn(user) }
func (m *mockUserService) EditUser(userID int64, in services.EditInput) (*models.User, error) {
	return m.EditUserFn(userID, in)
}
func (m *mockUserService) Logout(userID int64) error               { return m.LogoutFn(userID) }
func (m *mockUserService) Remove(userID int64) error               { return m.RemoveFn(userID) }
func (m *mockUserService) SetStatus(userID int64, st string) error { return m.SetStatusFn(userID, st) }
func (m *mockUserService) GetByID(id int64) (*models.User, error)  { return m.GetByIDFn(id) }
func (m *mockUserService) GetByUsername(username string) (*models.User, error) {
	return m.GetByUsernameFn(username)
}
func (m *mockUserService) GetByTelephone(telephone string) (*models.User, error) {
	return m.GetByTelephoneFn(telephone)
}

type mockAuthService struct {
	HashPasswordFn  func(plain string) (string, error)
	CheckPasswordFn func(hash, plain string) bool
}

func (m *mockAuthService) HashPassword(plain string) (string, error) {
	return m.HashPasswordFn(plain)
}
func (m *mockAuthService) CheckPassword(hash, plain string) bool {
	return m.CheckPasswordFn(hash, plain)
}

type mockTokenService struct {
	IssueFn        func(userID int64, name string) (string, error)
	AuthenticateFn func(plain string) (*models.AccessToken, error)
	RevokeAllFn    func(userID int64) error
}

func (m *mockTokenService) Issue(userID int64, name string) (string, error) {
	return m.IssueFn(userID, name)
}
func (m *mockTokenService) Authenticate(plain string) (*models.AccessToken, error) {
	return m.AuthenticateFn(plain)
}
func (m *mockTokenService) RevokeAll(userID int64) error { return m.RevokeAllFn(userID) }

type mockResetService struct {
	ForgotPasswordFn    func(email, fromFow string) (*models.ResetCodePassword, error)
	ForgotPasswordOTPFn func(telephone string) (*models.User, error)
	CheckCodeFn         func(code string) (*models.ResetCodePassword, error)
	ResetPasswordFn     func(code, newPassword string) error
	ResetPasswordOTPFn  func(telephone, code, newPassword string) error
}

func (m *mockResetService) ForgotPassword(email, fromFow string) (*models.ResetCodePassword, error) {
	return m.ForgotPasswordFn(email, fromFow)
}
func (m *mockResetService) ForgotPasswordOTP(telephone string) (*models.User, error) {
	return m.ForgotPasswordOTPFn(telephone)
}
func (m *mockResetService) CheckCode(code string) (*models.ResetCodePassword, error) {
	return m.CheckCodeFn(code)
}
func (m *mockResetService) ResetPassword(code, newPassword string) error {
	return m.ResetPasswordFn(code, newPassword)
}
func (m *mockResetService) ResetPasswordOTP(telephone, code, newPassword string) error {
	return m.ResetPasswordOTPFn(telephone, code, newPassword)
}

// mockLogService avale tout par défaut, le journal est au mieux.
type mockLogService struct {
	AddToLogFn   func(meta services.RequestMeta, subject string, payload any)
	ListAllFn    func() ([]*models.LogActivity, error)
	ListByUserFn func(userID int64) ([]*models.LogActivity, error)
}

func (m *mockLogService) AddToLog(meta services.RequestMeta, subject string, payload any) {
	if m.AddToLogFn != nil {
		m.AddToLogFn(meta, subject, payload)
	}
}
func (m *mockLogService) ListAll() ([]*models.LogActivity, error) { return m.ListAllFn() }
func (m *mockLogService) ListByUser(userID int64) ([]*models.LogActivity, error) {
	return m.ListByUserFn(userID)
}

type mockPaysRepo struct {
	ListAllFn                 func() ([]*models.Pays, error)
	GetByIDFn                 func(id int64) (*models.Pays, error)
	CreateFn                  func(p *models.Pays) error
	UpdateFn                  func(p *models.Pays) error
	SoftDeleteFn              func(id int64) error
	GetByIDIncludingDeletedFn func(id int64) (*models.Pays, error)
}

func (m *mockPaysRepo) ListAll() ([]*models.Pays, error)       { return m.ListAllFn() }
func (m *mockPaysRepo) GetByID(id int64) (*models.Pays, error) { return m.GetByIDFn(id) }
func (m *mockPaysRepo) Create(p *models.Pays) error            { return m.CreateFn(p) }
func (m *mockPaysRepo) Update(p *models.Pays) error            { return m.UpdateFn(p) }
func (m *mockPaysRepo) SoftDelete(id int64) error              { return m.SoftDeleteFn(id) }
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
