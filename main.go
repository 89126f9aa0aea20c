package main

import (
	"os"

	"github.com/Justlrnal4/golf-group-organizer/routes"
	"github.com/Justlrnal4/golf-group-organizer/storage"
	"github.com/Justlrnal4/golf-group-organizer/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	godotenv.Load()
	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	participantTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("PARTICIPANT_TOKEN_SECRET")))
	participantTokenVerifier.WithDefaultBlocklist()
	participantTokenVerifierMiddleware := participantTokenVerifier.Verify(func() interface{} {
		return new(utils.ParticipantToken)
	})

	outing := app.Party("/api/outing")
	{
		outing.Post("/", routes.CreateOuting)
		outing.Get("/code/{code}", routes.GetOutingByCode)
		outing.Get("/{id:uint}", routes.GetOuting)
		outing.Post("/{id:uint}/join", routes.JoinOuting)
		outing.Get("/{id:uint}/participants", routes.ListParticipants)

		outing.Post("/{id:uint}/close", participantTokenVerifierMiddleware, utils.OutingMemberMiddleware, utils.OrganizerOnlyMiddleware, routes.CloseOuting)
		outing.Post("/{id:uint}/plans/generate", participantTokenVerifierMiddleware, utils.OutingMemberMiddleware, routes.GeneratePlans)
		outing.Get("/{id:uint}/plans", participantTokenVerifierMiddleware, utils.OutingMemberMiddleware, routes.ListPlans)
	}

	plan := app.Party("/api/plan")
	{
		plan.Post("/{id:uint}/vote", participantTokenVerifierMiddleware, routes.CastVote)
		plan.Get("/{id:uint}/votes", participantTokenVerifierMiddleware, routes.GetVotes)
	}

	courses := app.Party("/api/courses")
	{
		courses.Get("/", routes.ListCourses)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	app.Listen(":" + port)
}
