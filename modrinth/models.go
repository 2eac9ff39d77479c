package modrinth

import (
	"time"
)

// NotificationType classifies a notification. Unknown values sent by the
// server are kept as-is.
type NotificationType string

const (
	NotificationProjectUpdate    NotificationType = "project_update"
	NotificationTeamInvite       NotificationType = "team_invite"
	NotificationStatusChange     NotificationType = "status_change"
	NotificationModeratorMessage NotificationType = "moderator_message"
)

// IsValid reports whether t is one of the documented notification types
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationProjectUpdate, NotificationTeamInvite, NotificationStatusChange, NotificationModeratorMessage:
		return true
	}
	return false
}

// Notification is a message delivered to a user
type Notification struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	// Type is nil for legacy notifications
	Type    *NotificationType    `json:"type"`
	Title   string               `json:"title"`
	Text    string               `json:"text"`
	Link    string               `json:"link"`
	Read    bool                 `json:"read"`
	Created time.Time            `json:"created"`
	Actions []NotificationAction `json:"actions"`
}

// TypeName returns the notification type, or an empty string when unset
func (n Notification) TypeName() string {
	if n.Type == nil {
		return ""
	}
	return string(*n.Type)
}

// NotificationAction is a follow-up the user can take on a notification
type NotificationAction struct {
	Title string `json:"title"`
	// ActionRoute is the method and path of the action, e.g. ["POST", "team/{id}/join"]
	ActionRoute []string `json:"action_route"`
}

// AuthError is the body returned with 401 responses
type AuthError struct {
	Error       string `json:"error"`
	Description string `json:"description"`
}

// UserRole is the platform role of a user
type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleModerator UserRole = "moderator"
	RoleDeveloper UserRole = "developer"
)

// IsValid reports whether r is one of the documented roles
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleModerator, RoleDeveloper:
		return true
	}
	return false
}

// User is a Modrinth account
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      *string   `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Bio       *string   `json:"bio"`
	AvatarURL string    `json:"avatar_url"`
	Created   time.Time `json:"created"`
	Role      UserRole  `json:"role"`
}

// EditableUser holds the user fields that can be changed with ModifyUser.
// Nil fields are left untouched.
type EditableUser struct {
	Username *string `json:"username,omitempty"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Bio      *string `json:"bio,omitempty"`
}

// ProjectStatus is the moderation state of a project
type ProjectStatus string

const (
	ProjectApproved   ProjectStatus = "approved"
	ProjectArchived   ProjectStatus = "archived"
	ProjectRejected   ProjectStatus = "rejected"
	ProjectDraft      ProjectStatus = "draft"
	ProjectUnlisted   ProjectStatus = "unlisted"
	ProjectProcessing ProjectStatus = "processing"
	ProjectWithheld   ProjectStatus = "withheld"
	ProjectScheduled  ProjectStatus = "scheduled"
	ProjectPrivate    ProjectStatus = "private"
	ProjectUnknown    ProjectStatus = "unknown"
)

// IsValid reports whether s is one of the documented statuses
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectApproved, ProjectArchived, ProjectRejected, ProjectDraft, ProjectUnlisted,
		ProjectProcessing, ProjectWithheld, ProjectScheduled, ProjectPrivate, ProjectUnknown:
		return true
	}
	return false
}

// ProjectLicense describes the license a project is published under
type ProjectLicense struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	URL  *string `json:"url"`
}

// Project is a mod, modpack, resource pack or shader
type Project struct {
	ID           string         `json:"id"`
	Slug         string         `json:"slug"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Categories   []string       `json:"categories"`
	ClientSide   string         `json:"client_side"`
	ServerSide   string         `json:"server_side"`
	Body         string         `json:"body"`
	Status       ProjectStatus  `json:"status"`
	ProjectType  string         `json:"project_type"`
	Downloads    int64          `json:"downloads"`
	Followers    int64          `json:"followers"`
	IconURL      *string        `json:"icon_url"`
	Team         string         `json:"team"`
	Published    time.Time      `json:"published"`
	Updated      time.Time      `json:"updated"`
	Versions     []string       `json:"versions"`
	GameVersions []string       `json:"game_versions"`
	Loaders      []string       `json:"loaders"`
	License      ProjectLicense `json:"license"`
}

// VersionType is the release channel of a version
type VersionType string

const (
	VersionRelease VersionType = "release"
	VersionBeta    VersionType = "beta"
	VersionAlpha   VersionType = "alpha"
)

// IsValid reports whether t is one of the documented release channels
func (t VersionType) IsValid() bool {
	switch t {
	case VersionRelease, VersionBeta, VersionAlpha:
		return true
	}
	return false
}

// VersionDependency links a version to another project or version
type VersionDependency struct {
	VersionID      *string `json:"version_id"`
	ProjectID      *string `json:"project_id"`
	FileName       *string `json:"file_name"`
	DependencyType string  `json:"dependency_type"`
}

// VersionFileHashes holds the digests of a version file
type VersionFileHashes struct {
	SHA512 string `json:"sha512"`
	SHA1   string `json:"sha1"`
}

// VersionFile is one downloadable file of a version
type VersionFile struct {
	Hashes   VersionFileHashes `json:"hashes"`
	URL      string            `json:"url"`
	Filename string            `json:"filename"`
	Primary  bool              `json:"primary"`
	Size     int64             `json:"size"`
	FileType *string           `json:"file_type"`
}

// Version is a published release of a project
type Version struct {
	ID            string              `json:"id"`
	ProjectID     string              `json:"project_id"`
	AuthorID      string              `json:"author_id"`
	Name          string              `json:"name"`
	VersionNumber string              `json:"version_number"`
	Changelog     *string             `json:"changelog"`
	Dependencies  []VersionDependency `json:"dependencies"`
	GameVersions  []string            `json:"game_versions"`
	VersionType   VersionType         `json:"version_type"`
	Loaders       []string            `json:"loaders"`
	Featured      bool                `json:"featured"`
	Status        string              `json:"status"`
	DatePublished time.Time           `json:"date_published"`
	Downloads     int64               `json:"downloads"`
	Files         []VersionFile       `json:"files"`
}

// PrimaryFile returns the primary file, falling back to the first one
func (v Version) PrimaryFile() (VersionFile, bool) {
	for _, f := range v.Files {
		if f.Primary {
			return f, true
		}
	}
	if len(v.Files) > 0 {
		return v.Files[0], true
	}
	return VersionFile{}, false
}

// CreatableVersion is the metadata part of a version upload
type CreatableVersion struct {
	Name          string              `json:"name"`
	VersionNumber string              `json:"version_number"`
	Changelog     *string             `json:"changelog,omitempty"`
	Dependencies  []VersionDependency `json:"dependencies"`
	GameVersions  []string            `json:"game_versions"`
	VersionType   VersionType         `json:"version_type"`
	Loaders       []string            `json:"loaders"`
	Featured      bool                `json:"featured"`
	Status        string              `json:"status,omitempty"`
	ProjectID     string              `json:"project_id"`
	FileParts     []string            `json:"file_parts"`
	PrimaryFile   string              `json:"primary_file,omitempty"`
}
