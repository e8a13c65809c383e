package seed

import "github.com/bhzconnection/escola/internal/model"

type alunoFixture struct {
	name       string
	bornDate   string
	classShift string
}

var alunos = []alunoFixture{
	{"Pedro Souza", "2000-01-01", model.ShiftManha},
	{"Ana Paula Souza", "2001-02-02", model.ShiftTarde},
	{"Lucas Oliveira", "2002-03-03", model.ShiftManha},
	{"Mariana Santos", "2003-04-04", model.ShiftTarde},
	{"Gustavo Lima", "2004-05-05", model.ShiftManha},
	{"Juliana Lima", "2005-06-06", model.ShiftTarde},
	{"Rafaela Costa", "2006-07-07", model.ShiftManha},
	{"Fernando Costa", "2007-08-08", model.ShiftTarde},
	{"Larissa Santos", "2008-09-09", model.ShiftManha},
	{"Rodrigo Santos", "2009-10-10", model.ShiftTarde},
	{"Isabela Oliveira", "2010-11-11", model.ShiftManha},
	{"Thiago Oliveira", "2011-12-12", model.ShiftTarde},
	{"Gabriel Silva", "2012-01-13", model.ShiftManha},
	{"Carla Silva", "2013-02-14", model.ShiftTarde},
	{"Luciana Santos", "2014-03-15", model.ShiftManha},
	{"Ricardo Santos", "2015-04-16", model.ShiftTarde},
}

type professorFixture struct {
	name     string
	email    string
	password string
}

var professores = []professorFixture{
	{"William", "william@bhzconnection.org.br", "password123"},
}

type periodoFixture struct {
	start      string
	end        string
	classShift string
	holidays   []string
}

var periodos = []periodoFixture{
	{
		start:      "2023-01-01",
		end:        "2023-06-30",
		classShift: model.ShiftManha,
		holidays:   []string{"2023-01-01", "2023-01-02", "2023-01-03"},
	},
}

const holidayReason = "Feriado"
