package service

import "errors"

var (
	ErrDuplicateEmail    = errors.New("email já cadastrado")
	ErrNotFound          = errors.New("candidatura não encontrada")
	ErrAlreadyReviewed   = errors.New("candidatura já foi revisada")
	ErrInvalidToken      = errors.New("token de convite inválido ou expirado")
	ErrNotApproved       = errors.New("candidatura não está aprovada")
	ErrTokenExpired      = errors.New("token de convite expirado")
	ErrAlreadyRegistered = errors.New("membro já cadastrado")
	ErrMemberNotFound    = errors.New("membro não encontrado")
)
