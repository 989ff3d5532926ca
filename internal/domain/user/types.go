package user

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
	RoleSeller   Role = "seller"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleSeller:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusUnconfirmed Status = "unconfirmed"
	StatusActive      Status = "active"
	StatusBlocked     Status = "blocked"
	StatusDeleted     Status = "deleted"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUnconfirmed, StatusActive, StatusBlocked, StatusDeleted:
		return true
	default:
		return false
	}
}
