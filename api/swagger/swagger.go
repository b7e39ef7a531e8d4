package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Campus Hub API",
        "description": "Campus management backend: attendance, study materials, timetable generation and classroom chat",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Attendance", "description": "Student roster and attendance marks"},
        {"name": "Materials", "description": "Study material uploads"},
        {"name": "Timetable", "description": "Weekly timetable generation"},
        {"name": "Chat", "description": "Classroom chat history"},
        {"name": "Reports", "description": "Attendance report exports"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/attendance": {
            "get": {
                "tags": ["Attendance"],
                "summary": "Full attendance roster keyed by student id",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/attendance/student": {
            "post": {
                "tags": ["Attendance"],
                "summary": "Register a student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddStudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Missing studentId or name", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/attendance/record": {
            "post": {
                "tags": ["Attendance"],
                "summary": "Append an attendance mark",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddRecordRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Unknown student", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/materials": {
            "get": {
                "tags": ["Materials"],
                "summary": "List study materials newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Material"}}}
                }
            }
        },
        "/api/materials/upload": {
            "post": {
                "tags": ["Materials"],
                "summary": "Upload a study material",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"},
                    {"name": "title", "in": "formData", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Missing file", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/timetable/generate": {
            "post": {
                "tags": ["Timetable"],
                "summary": "Generate a weekly timetable grid",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateTimetableRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/timetable/templates": {
            "get": {
                "tags": ["Timetable"],
                "summary": "List saved templates newest first",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Timetable"],
                "summary": "Save a generated timetable as a template",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveTemplateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Missing name", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/chat/history": {
            "get": {
                "tags": ["Chat"],
                "summary": "Chat history oldest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ChatMessage"}}}
                }
            }
        },
        "/api/reports": {
            "post": {
                "tags": ["Reports"],
                "summary": "Queue an attendance report",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateReportRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/reports/{id}": {
            "get": {
                "tags": ["Reports"],
                "summary": "Report job status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Unknown job", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/reports/{id}/download": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download a finished report",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Job missing or not finished", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        }
    },
    "definitions": {
        "AddStudentRequest": {
            "type": "object",
            "properties": {
                "studentId": {"type": "string"},
                "name": {"type": "string"}
            },
            "required": ["studentId", "name"]
        },
        "AddRecordRequest": {
            "type": "object",
            "properties": {
                "studentId": {"type": "string"},
                "date": {"type": "string"},
                "present": {"type": "boolean"}
            },
            "required": ["studentId"]
        },
        "Material": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "filename": {"type": "string"},
                "originalName": {"type": "string"},
                "uploadedAt": {"type": "string"}
            }
        },
        "ChatMessage": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "text": {"type": "string"},
                "from": {"type": "string"},
                "ts": {"type": "string"}
            }
        },
        "GenerateTimetableRequest": {
            "type": "object",
            "properties": {
                "subjects": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/SubjectRequest"}
                },
                "startHour": {"type": "integer"},
                "endHour": {"type": "integer"},
                "days": {"type": "array", "items": {"type": "string"}}
            }
        },
        "SubjectRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "hoursPerWeek": {"type": "number"}
            }
        },
        "SaveTemplateRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "request": {"$ref": "#/definitions/GenerateTimetableRequest"}
            },
            "required": ["name"]
        },
        "CreateReportRequest": {
            "type": "object",
            "properties": {
                "format": {"type": "string", "enum": ["csv", "pdf"]}
            },
            "required": ["format"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
