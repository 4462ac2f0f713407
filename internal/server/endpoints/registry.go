package endpoints

import (
	"github.com/kgplan/kgplan/internal/api"
)

// All returns all endpoint instances.
func All() []api.Endpoint {
	return []api.Endpoint{
		// Health
		&HealthEndpoint{},

		// Form schema
		&SchemaEndpoint{},

		// Plan endpoints
		&ValidatePlanEndpoint{},
		&SavePlanEndpoint{},
		&GetPlanEndpoint{},
		&DeletePlanEndpoint{},
		&ListPlansEndpoint{},
		&PlanInfoEndpoint{},

		// Semester endpoints
		&SetSemesterEndpoint{},
		&GetSemesterEndpoint{},

		// Document generation
		&GenerateEndpoint{},

		// AI draft splitting
		&SplitEndpoint{},
	}
}

// PlanCommands returns endpoints grouped under the "plans" subcommand.
func PlanCommands() []api.Endpoint {
	return []api.Endpoint{
		&ValidatePlanEndpoint{},
		&SavePlanEndpoint{},
		&GetPlanEndpoint{},
		&DeletePlanEndpoint{},
		&ListPlansEndpoint{},
		&PlanInfoEndpoint{},
	}
}

// SemesterCommands returns endpoints grouped under the "semester" subcommand.
func SemesterCommands() []api.Endpoint {
	return []api.Endpoint{
		&SetSemesterEndpoint{},
		&GetSemesterEndpoint{},
	}
}
