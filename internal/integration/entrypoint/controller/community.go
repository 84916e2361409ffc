package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contacomigo/backend/internal/application/usecase/community"
	"github.com/contacomigo/backend/internal/integration/entrypoint/dto"
)

// CommunityController handles the community feed.
type CommunityController struct {
	listUseCase *community.ListPostsUseCase
	likeUseCase *community.LikePostUseCase
}

// NewCommunityController creates a new community controller instance.
func NewCommunityController(listUseCase *community.ListPostsUseCase, likeUseCase *community.LikePostUseCase) *CommunityController {
	return &CommunityController{
		listUseCase: listUseCase,
		likeUseCase: likeUseCase,
	}
}

// List handles GET /community requests.
func (c *CommunityController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPostListResponse(output))
}

// Like handles POST /community/:id/like requests.
func (c *CommunityController) Like(ctx *gin.Context) {
	output, err := c.likeUseCase.Execute(ctx.Request.Context(), community.LikePostInput{PostID: ctx.Param("id")})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLikePostResponse(output))
}
