package routers

import (
	"serenia-service/internal/app/delivery/http/middlewares"
	"serenia-service/internal/app/services/core/forum"

	"github.com/go-chi/chi/v5"
)

func attachForumRoutes(router chi.Router, middlewares *middlewares.Middlewares, forumController *forum.ForumController) {
	router.Post("/posts", forumController.CreateForumPost)
	router.Get("/posts", forumController.FindApprovedForumPosts)
	router.Get("/posts/{forum_post_id}", forumController.FindForumPostByID)
	router.Post("/posts/{forum_post_id}/moderate", forumController.ModerateForumPost)
	router.Post("/posts/{forum_post_id}/replies", forumController.CreateForumReply)
}
