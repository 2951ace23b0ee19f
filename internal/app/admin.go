package app

import (
	intconfig "rescuerehab/internal/config"
	"rescuerehab/internal/domain"
)

// adminIdentity is the single configured admin principal.
func adminIdentity(env intconfig.Env) domain.AdminIdentity {
	return domain.AdminIdentity{ID: 1, Username: env.AdminUsername, Email: env.AdminEmail}
}
