package httpx

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AdarshJain-dev/Three-Tier-Application-Deployment-CI/internal/models"
)

// root is a convenience alias for the student list, wrapped in a
// message envelope.
func (s *Server) root(c *gin.Context) {
	students, err := s.Store.ListStudents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Student data fetched successfully",
		"studentData": students,
	})
}

func (s *Server) listStudents(c *gin.Context) {
	students, err := s.Store.ListStudents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, students)
}

func (s *Server) addStudent(c *gin.Context) {
	var req models.NewStudent
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.RollNo == "" || req.Class == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, rollNo and class are required"})
		return
	}
	if err := s.Store.AddStudent(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Student added successfully"})
}

func (s *Server) deleteStudent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad id"})
		return
	}
	if err := s.Store.DeleteStudent(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student deleted successfully"})
}

func (s *Server) listTeachers(c *gin.Context) {
	teachers, err := s.Store.ListTeachers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, teachers)
}

func (s *Server) addTeacher(c *gin.Context) {
	var req models.NewTeacher
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Subject == "" || req.Class == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, subject and class are required"})
		return
	}
	if err := s.Store.AddTeacher(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Teacher added successfully"})
}

func (s *Server) deleteTeacher(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad id"})
		return
	}
	if err := s.Store.DeleteTeacher(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Teacher deleted successfully"})
}
