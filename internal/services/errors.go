package services

import "errors"

// Erreurs sentinelles sur lesquelles les handlers branchent leurs statuts HTTP.
var (
	ErrNotFound         = errors.New("introuvable")
	ErrEmailTaken       = errors.New("cet email existe deja dans la base de donnée")
	ErrTelephoneTaken   = errors.New("ce numéro de téléphone existe déjà dans la base de donnée")
	ErrAlreadyVerified  = errors.New("déjà vérifié")
	ErrInvalidCode      = errors.New("code non valide")
	ErrCodeExpired      = errors.New("code expiré")
	ErrProviderDispatch = errors.New("échec d'envoi chez le fournisseur de vérification")
	ErrWrongAuthChannel = errors.New("canal d'authentification inadapté")
	ErrMissingContact   = errors.New("email ou téléphone requis")
	ErrParentNotFound   = errors.New("parent introuvable")
)
