// Package httpx exposes the student and teacher records over JSON HTTP.
package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AdarshJain-dev/Three-Tier-Application-Deployment-CI/internal/models"
)

// Store is what the handlers need from the database layer.
type Store interface {
	ListStudents(ctx context.Context) ([]models.Student, error)
	AddStudent(ctx context.Context, st models.NewStudent) error
	DeleteStudent(ctx context.Context, id int) error
	ListTeachers(ctx context.Context) ([]models.Teacher, error)
	AddTeacher(ctx context.Context, tc models.NewTeacher) error
	DeleteTeacher(ctx context.Context, id int) error
	Ping(ctx context.Context) error
}

type Server struct {
	R     *gin.Engine
	Store Store
}

// NewServer builds the gin engine and registers every route against the
// injected store.
func NewServer(store Store) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	r.Use(CORS())

	s := &Server{R: r, Store: store}

	r.GET("/health", s.health)
	r.GET("/ready", s.ready)
	r.GET("/", s.root)

	r.GET("/student", s.listStudents)
	r.POST("/addstudent", s.addStudent)
	r.DELETE("/student/:id", s.deleteStudent)

	r.GET("/teacher", s.listTeachers)
	r.POST("/addteacher", s.addTeacher)
	r.DELETE("/teacher/:id", s.deleteTeacher)

	return s
}

// health reports liveness only: the process is up.
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}

// ready reports whether the database answers a trivial query.
func (s *Server) ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.Store.Ping(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "NOT_READY"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "READY"})
}
