package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-onboarding-wizard/internal/interface/http"
)

// OnboardingModule wires the wizard handlers under /onboarding:
//
//	GET    /onboarding                      current view
//	POST   /onboarding/reset                fresh session
//	PUT    /onboarding/{record}/:field      generic field setter
//	POST   /onboarding/phone-numbers        add phone number
//	PUT    /onboarding/phone-numbers/:index update phone number
//	DELETE /onboarding/phone-numbers/:index remove phone number
//	POST   /onboarding/next | previous | steps/:step
//	POST   /onboarding/submit
type OnboardingModule struct {
	Handler *handlers.OnboardingHandler
}

func NewOnboardingModule(h *handlers.OnboardingHandler) *OnboardingModule {
	return &OnboardingModule{Handler: h}
}

func (m *OnboardingModule) Name() string { return "onboarding" }

func (m *OnboardingModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/onboarding")
	{
		g.GET("", m.Handler.Get)
		g.POST("/reset", m.Handler.Reset)

		g.PUT("/user-info/:field", m.Handler.SetUserInfoField())
		g.PUT("/contact-info/:field", m.Handler.SetContactInfoField())
		g.PUT("/preferences/:field", m.Handler.SetPreferencesField())

		g.POST("/phone-numbers", m.Handler.AddPhoneNumber)
		g.PUT("/phone-numbers/:index", m.Handler.UpdatePhoneNumber)
		g.DELETE("/phone-numbers/:index", m.Handler.RemovePhoneNumber)

		g.POST("/next", m.Handler.Next)
		g.POST("/previous", m.Handler.Previous)
		g.POST("/steps/:step", m.Handler.GoTo)

		g.POST("/submit", m.Handler.Submit)
	}
}
