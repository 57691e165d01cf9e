// Package demoserver is a self-contained REST backend seeded with the
// demo dataset. It exists so the client has something real to talk to
// during development; the production backend lives elsewhere.
package demoserver

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lamdoan/classdesk/internal/logger"
	"github.com/lamdoan/classdesk/internal/model"
	"github.com/lamdoan/classdesk/internal/token"
)

// Server holds the in-memory collections behind the REST surface.
type Server struct {
	tokens *token.JWT
	logger *logger.Logger

	mu        sync.RWMutex
	users     []model.User
	passwords map[string][]byte
	students  []model.Student
	classes   []model.Class
	scores    []model.Score
	revoked   map[string]struct{}
}

// New creates a server seeded with the demo dataset. The demo
// passwords are stored bcrypt-hashed; the plaintext list never leaves
// the client's offline fallback.
func New(tokens *token.JWT, logger *logger.Logger) (*Server, error) {
	seed, err := buildSeed()
	if err != nil {
		return nil, err
	}

	return &Server{
		tokens:    tokens,
		logger:    logger,
		users:     seed.users,
		passwords: seed.passwords,
		students:  seed.students,
		classes:   seed.classes,
		scores:    seed.scores,
		revoked:   make(map[string]struct{}),
	}, nil
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.GET("/health", s.handleHealth)
	api.POST("/auth/login", s.handleLogin)

	auth := api.Group("", s.authMiddleware)
	auth.POST("/auth/logout", s.handleLogout)
	auth.GET("/auth/verify", s.handleVerify)

	auth.GET("/students", s.handleListStudents)
	auth.GET("/students/:id", s.handleGetStudent)
	auth.POST("/students", s.handleCreateStudent)
	auth.PUT("/students/:id", s.handleUpdateStudent)
	auth.DELETE("/students/:id", s.handleDeleteStudent)

	auth.GET("/users", s.handleListUsers)
	auth.GET("/classes", s.handleListClasses)
	auth.POST("/classes", s.handleCreateClass)
	auth.GET("/scores", s.handleListScores)
	auth.POST("/scores", s.handleRecordScore)

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleLogin(c *gin.Context) {
	var cred model.Credential
	if err := c.ShouldBindJSON(&cred); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	s.mu.RLock()
	hash, hasPassword := s.passwords[cred.Email]
	user, hasUser := s.findUserByEmail(cred.Email)
	s.mu.RUnlock()

	if !hasUser || !hasPassword || bcrypt.CompareHashAndPassword(hash, []byte(cred.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	}

	tok, err := s.tokens.Generate(user.ID, string(user.Role))
	if err != nil {
		s.logger.Error("demo server: failed to issue token", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, model.Session{User: user, Token: tok})
}

func (s *Server) handleLogout(c *gin.Context) {
	s.mu.Lock()
	s.revoked[bearerToken(c)] = struct{}{}
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (s *Server) handleVerify(c *gin.Context) {
	user := c.MustGet(contextKeyUser).(model.User)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (s *Server) handleListStudents(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c.JSON(http.StatusOK, s.students)
}

func (s *Server) handleGetStudent(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.students {
		if st.ID == c.Param("id") {
			c.JSON(http.StatusOK, st)
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"message": "student not found"})
}

func (s *Server) handleCreateStudent(c *gin.Context) {
	var st model.Student
	if err := c.ShouldBindJSON(&st); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if st.ID == "" {
		st.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.students {
		if existing.ID == st.ID {
			c.JSON(http.StatusConflict, gin.H{"message": "student already exists"})
			return
		}
	}
	s.students = append(s.students, st)

	c.JSON(http.StatusCreated, st)
}

func (s *Server) handleUpdateStudent(c *gin.Context) {
	var st model.Student
	if err := c.ShouldBindJSON(&st); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	st.ID = c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.students {
		if existing.ID == st.ID {
			s.students[i] = st
			c.JSON(http.StatusOK, st)
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"message": "student not found"})
}

func (s *Server) handleDeleteStudent(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.students {
		if existing.ID == id {
			s.students = append(s.students[:i], s.students[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "student deleted"})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"message": "student not found"})
}

func (s *Server) handleListUsers(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c.JSON(http.StatusOK, s.users)
}

func (s *Server) handleListClasses(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c.JSON(http.StatusOK, s.classes)
}

func (s *Server) handleCreateClass(c *gin.Context) {
	var class model.Class
	if err := c.ShouldBindJSON(&class); err != nil || class.ID == "" || class.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "class id and name are required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.classes {
		if existing.ID == class.ID {
			c.JSON(http.StatusConflict, gin.H{"message": "class already exists"})
			return
		}
	}
	s.classes = append(s.classes, class)

	c.JSON(http.StatusCreated, class)
}

func (s *Server) handleListScores(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c.JSON(http.StatusOK, s.scores)
}

func (s *Server) handleRecordScore(c *gin.Context) {
	var score model.Score
	if err := c.ShouldBindJSON(&score); err != nil || score.StudentID == "" || score.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "student id and score type are required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.scores {
		if existing.StudentID == score.StudentID && existing.Type == score.Type {
			s.scores[i] = score
			c.JSON(http.StatusOK, score)
			return
		}
	}
	s.scores = append(s.scores, score)

	c.JSON(http.StatusCreated, score)
}

// findUserByID looks up a seeded account; callers hold the mutex.
func (s *Server) findUserByID(id string) (model.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// findUserByEmail looks up a seeded account; callers hold the mutex.
func (s *Server) findUserByEmail(email string) (model.User, bool) {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return model.User{}, false
}
