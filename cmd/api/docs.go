package main

// @title           Stock Assistant API
// @version         1.0
// @description     Assistente de ações para o painel do mercado indiano

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Token da sessão no esquema Bearer. Exemplo: "Bearer {token}"
