package domain

type User struct {
	Id       UserId
	Name     string
	PassHash string
}

type Credentials struct {
	Name     string
	Password string
}
