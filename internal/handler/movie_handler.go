package handler

import (
	"net/http"
	"strconv"

	"circleup/backend/internal/database"
	"circleup/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type MovieInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ReleaseYear int    `json:"release_year"`
}

type MovieResponse struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	ReleaseYear   int    `json:"release_year"`
	CommentsCount int64  `json:"comments_count"`
}

func newMovieResponse(movie models.Movie) MovieResponse {
	return MovieResponse{
		ID:            movie.ID,
		Title:         movie.Title,
		Description:   movie.Description,
		ReleaseYear:   movie.ReleaseYear,
		CommentsCount: movie.CommentsCount,
	}
}

// endregion

// GetMovies godoc
// @Summary      List movies
// @Description  Lists the movie catalog with optional title search, paginated.
// @Tags         movies
// @Produce      json
// @Param        q     query     string  false  "Search query for title"
// @Param        page  query     int     false  "Page number" default(1)
// @Param        limit query     int     false  "Items per page" default(20)
// @Success      200   {object}  PaginatedResponse[MovieResponse]
// @Failure      401   {object}  ErrorResponse
// @Router       /movies [get]
func GetMovies(c *gin.Context) {
	page, limit := pageParams(c)

	query := database.DB.Model(&models.Movie{})
	if searchQuery := c.Query("q"); searchQuery != "" {
		query = query.Where("title ILIKE ?", "%"+searchQuery+"%")
	}

	result, err := Paginate[models.Movie](query, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve movies"})
		return
	}

	responses := make([]MovieResponse, len(result.Data))
	for i, movie := range result.Data {
		responses[i] = newMovieResponse(movie)
	}
	c.JSON(http.StatusOK, PaginatedResponse[MovieResponse]{Data: responses, Meta: result.Meta})
}

// GetMovieByID godoc
// @Summary      Get a movie
// @Description  Retrieves a movie by ID. Movies are always public.
// @Tags         movies
// @Produce      json
// @Param        id   path      int  true  "Movie ID"
// @Success      200  {object}  MovieResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /movies/{id} [get]
func GetMovieByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return
	}

	var movie models.Movie
	if err := database.DB.First(&movie, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		return
	}
	c.JSON(http.StatusOK, newMovieResponse(movie))
}

// region --- Admin Handlers ---

// CreateMovie godoc
// @Summary      Create a movie
// @Description  Adds a movie to the catalog.
// @Tags         admin-movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body MovieInput true "Movie Info"
// @Success      201  {object}  MovieResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Router       /admin/movies [post]
func CreateMovie(c *gin.Context) {
	var input MovieInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie := models.Movie{
		Title:       input.Title,
		Description: input.Description,
		ReleaseYear: input.ReleaseYear,
	}
	if err := database.DB.Create(&movie).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create movie"})
		return
	}
	c.JSON(http.StatusCreated, newMovieResponse(movie))
}

// UpdateMovie godoc
// @Summary      Update a movie
// @Description  Updates a movie's catalog details.
// @Tags         admin-movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int        true  "Movie ID"
// @Param        input body      MovieInput true  "New Movie Info"
// @Success      200   {object}  MovieResponse
// @Failure      403   {object}  ErrorResponse "Admin access required"
// @Failure      404   {object}  ErrorResponse
// @Router       /admin/movies/{id} [put]
func UpdateMovie(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var movie models.Movie
	if err := database.DB.First(&movie, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		return
	}

	var input MovieInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie.Title = input.Title
	movie.Description = input.Description
	movie.ReleaseYear = input.ReleaseYear

	if err := database.DB.Save(&movie).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update movie"})
		return
	}
	c.JSON(http.StatusOK, newMovieResponse(movie))
}

// DeleteMovie godoc
// @Summary      Delete a movie
// @Description  Removes a movie from the catalog. Its comments stay behind as orphans.
// @Tags         admin-movies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Movie ID"
// @Success      200  {object}  map[string]string "{"message": "Movie deleted"}"
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/movies/{id} [delete]
func DeleteMovie(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var movie models.Movie
	if err := database.DB.First(&movie, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		return
	}

	if err := database.DB.Delete(&movie).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete movie"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Movie deleted"})
}

// endregion
