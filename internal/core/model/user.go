package model

type User interface {
	Subject() string
	Email() string
	DisplayName() string
	Provider() string
}

type BaseUser struct {
	displayName string
	subject     string
	email       string
	provider    string
}

// DisplayName implements User.
func (u *BaseUser) DisplayName() string {
	return u.displayName
}

// Email implements User.
func (u *BaseUser) Email() string {
	return u.email
}

// Provider implements User.
func (u *BaseUser) Provider() string {
	return u.provider
}

// Subject implements User.
func (u *BaseUser) Subject() string {
	return u.subject
}

var _ User = &BaseUser{}

func NewUser(provider, subject, email, displayName string) *BaseUser {
	return &BaseUser{
		displayName: displayName,
		subject:     subject,
		email:       email,
		provider:    provider,
	}
}

const (
	AnonymousProvider = "anonymous"
	AnonymousSubject  = "anonymous"
)

// AnonymousUser is the user attached to requests without a session.
func AnonymousUser() *BaseUser {
	return NewUser(AnonymousProvider, AnonymousSubject, "", "Anonymous")
}

func IsAnonymous(u User) bool {
	return u == nil || u.Provider() == AnonymousProvider
}

// Username returns the name stored as the author of topics and comments.
func Username(u User) string {
	if IsAnonymous(u) {
		return AnonymousSubject
	}

	if email := u.Email(); email != "" {
		return email
	}

	return u.Subject()
}
