package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Member roster handler functions

// memberInput is the wire shape for creating or editing a member.
type memberInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Active  *bool  `json:"active"`
}

// @Summary Get all members
// @Description Retrieve the full member roster
// @Tags members
// @Produce json
// @Success 200 {array} Member "List of members"
// @Router /api/members [get]
func getMembers(c *gin.Context) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	members := make([]Member, len(ws.Members))
	copy(members, ws.Members)

	c.JSON(http.StatusOK, members)
}

// @Summary Create member
// @Description Add a member to the roster (name required)
// @Tags members
// @Accept json
// @Produce json
// @Param member body memberInput true "Member data"
// @Success 201 {object} Member "Created member"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Router /api/members [post]
func createMember(c *gin.Context) {
	var in memberInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validateName(in.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now().UTC()
	member := Member{
		ID:        newID(),
		Name:      in.Name,
		Phone:     in.Phone,
		Address:   in.Address,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Active != nil {
		member.Active = *in.Active
	}

	ws.mu.Lock()
	defer ws.mu.Unlock()

	ws.Members = append(ws.Members, member)
	ws.persistMembers()

	c.JSON(http.StatusCreated, member)
}

// @Summary Update member
// @Description Replace a member's fields
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param member body memberInput true "Member data"
// @Success 200 {object} Member "Updated member"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Member not found"
// @Router /api/members/{id} [put]
func updateMember(c *gin.Context) {
	id := c.Param("id")
	var in memberInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validateName(in.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ws.mu.Lock()
	defer ws.mu.Unlock()

	for i := range ws.Members {
		if ws.Members[i].ID == id {
			ws.Members[i].Name = in.Name
			ws.Members[i].Phone = in.Phone
			ws.Members[i].Address = in.Address
			if in.Active != nil {
				ws.Members[i].Active = *in.Active
			}
			ws.Members[i].UpdatedAt = time.Now().UTC()
			ws.persistMembers()
			c.JSON(http.StatusOK, ws.Members[i])
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
}

// @Summary Delete member
// @Description Remove a member from the roster
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} map[string]interface{} "Member deleted"
// @Failure 404 {object} map[string]interface{} "Member not found"
// @Router /api/members/{id} [delete]
func deleteMember(c *gin.Context) {
	id := c.Param("id")

	ws.mu.Lock()
	defer ws.mu.Unlock()

	for i, m := range ws.Members {
		if m.ID == id {
			ws.Members = append(ws.Members[:i], ws.Members[i+1:]...)
			ws.persistMembers()
			c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
}
