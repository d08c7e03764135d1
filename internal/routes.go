package internal

import (
	"hydrod/internal/controllers"
	"hydrod/internal/providers"
	"net/http"
)

func InitRoutes(apiController *controllers.ApiController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/state", http.HandlerFunc(apiController.GetState))
	routers.Get("/stats", http.HandlerFunc(apiController.GetStats))
	routers.Get("/history", http.HandlerFunc(apiController.GetHistory))
	routers.Get("/hourly", http.HandlerFunc(apiController.GetHourly))

	routers.Post("/drink", http.HandlerFunc(apiController.RecordDrink))
	routers.Post("/refill", http.HandlerFunc(apiController.Refill))
	routers.Post("/goals/min", http.HandlerFunc(apiController.SetMinTarget))
	routers.Post("/goals/max", http.HandlerFunc(apiController.SetMaxTarget))
	routers.Post("/alert/threshold", http.HandlerFunc(apiController.SetAlertThreshold))
	routers.Post("/temperature", http.HandlerFunc(apiController.SetTemperature))

	routers.Get("/reminders", http.HandlerFunc(apiController.GetReminders))
	routers.Post("/reminders/add", http.HandlerFunc(apiController.AddReminder))
	routers.Post("/reminders/delete", http.HandlerFunc(apiController.DeleteReminder))

	routers.Get("/profile", http.HandlerFunc(apiController.GetProfile))
	routers.Post("/profile", http.HandlerFunc(apiController.SetProfile))
	routers.Get("/recommendations", http.HandlerFunc(apiController.GetRecommendations))
	return routers
}
