package utils

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// OutingMemberMiddleware ensures the token was issued for the outing in the
// {id} route parameter.
func OutingMemberMiddleware(ctx iris.Context) {
	outingID, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StatusCode(iris.StatusBadRequest)
		return
	}

	claims := jwt.Get(ctx).(*ParticipantToken)
	if claims.OutingID != outingID {
		ctx.StatusCode(iris.StatusForbidden)
		return
	}
	ctx.Next()
}

// OrganizerOnlyMiddleware restricts a route to the outing's organizer.
func OrganizerOnlyMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*ParticipantToken)
	if !claims.IsOrganizer {
		ctx.StatusCode(iris.StatusForbidden)
		ctx.JSON(iris.Map{"error": "forbidden", "message": "organizer access required"})
		return
	}
	ctx.Next()
}
