package storage

import "github.com/rooseveltalej/proyecto3/pkg/model"

// Default catalogue inserted by Seed
var SeedProfessors = []model.ProfessorRecord{
	{Name: "Quiros Oviedo Rocio", IdNumber: "12345678", AvailableHours: []string{"monday_7_11", "wednesday_12_4", "friday_7_11"}, Courses: []string{"elementos_de_computacion", "introduccion_a_la_programacion", "bases_de_datos_i"}},
	{Name: "Solis Parajeles Jonathan", IdNumber: "23456789", AvailableHours: []string{"tuesday_12_4", "thursday_7_11", "monday_7_11"}, Courses: []string{"analisis_y_diseno_de_algoritmos", "estructuras_de_datos", "taller_de_programacion"}},
	{Name: "Gomez Rodriguez Luis Diego", IdNumber: "34567890", AvailableHours: []string{"monday_12_4", "friday_7_11", "wednesday_7_11"}, Courses: []string{"fundamentos_de_organizacion_de_computadoras", "arquitectura_de_computadores", "redes"}},
	{Name: "Valerio Solis Lorena", IdNumber: "45678901", AvailableHours: []string{"wednesday_7_11", "thursday_7_11", "tuesday_12_4"}, Courses: []string{"taller_de_programacion", "programacion_orientada_a_objetos", "analisis_de_algoritmos"}},
	{Name: "Zamora Cardenas Willard", IdNumber: "56789012", AvailableHours: []string{"monday_7_11", "thursday_12_4", "wednesday_12_4"}, Courses: []string{"bases_de_datos_i", "bases_de_datos_ii", "introduccion_a_la_programacion"}},
	{Name: "Viquez Acuna Leonardo", IdNumber: "67890123", AvailableHours: []string{"tuesday_7_11", "friday_7_11", "wednesday_12_4"}, Courses: []string{"lenguajes_de_programacion", "compiladores_e_interpretes", "proyecto_de_ingenieria_de_software"}},
	{Name: "Solis Chacon Henry Emanuelle", IdNumber: "78901234", AvailableHours: []string{"monday_7_11", "wednesday_12_4", "friday_12_4"}, Courses: []string{"requerimientos_de_software", "diseno_de_software", "administracion_de_proyectos"}},
	{Name: "Viquez Acuna Oscar Mario", IdNumber: "89012345", AvailableHours: []string{"tuesday_12_4", "thursday_12_4", "monday_7_11"}, Courses: []string{"inteligencia_artificial", "investigacion_de_operaciones", "aseguramiento_de_la_calidad_del_software"}},
	{Name: "Alfaro Velasco Jorge", IdNumber: "90123456", AvailableHours: []string{"wednesday_7_11", "friday_12_4", "tuesday_12_4"}, Courses: []string{"principios_de_sistemas_operativos", "administracion_de_proyectos", "redes"}},
	{Name: "Esquivel Vega Gaudy", IdNumber: "01234567", AvailableHours: []string{"monday_12_4", "friday_7_11", "wednesday_12_4"}, Courses: []string{"aseguramiento_de_la_calidad_del_software", "redes", "proyecto_de_ingenieria_de_software"}},
	{Name: "Alfaro Quesada Alejandro", IdNumber: "11234567", AvailableHours: []string{"tuesday_7_11", "thursday_12_4", "friday_12_4"}, Courses: []string{"proyecto_de_ingenieria_de_software", "bases_de_datos_ii", "compiladores_e_interpretes"}},
	{Name: "Jimenez Delgado Efren Antonio", IdNumber: "12234567", AvailableHours: []string{"wednesday_7_11", "friday_7_11", "monday_12_4"}, Courses: []string{"computacion_y_sociedad", "introduccion_al_desarrollo_de_paginas_web", "programacion_orientada_a_objetos"}},
	{Name: "Ballestero Alfaro Esteban", IdNumber: "13234567", AvailableHours: []string{"monday_12_4", "thursday_7_11", "friday_12_4"}, Courses: []string{"introduccion_al_desarrollo_de_paginas_web", "fundamentos_de_organizacion_de_computadoras", "arquitectura_de_computadores"}},
	{Name: "Campos Fuentes Marvin", IdNumber: "14234567", AvailableHours: []string{"tuesday_12_4", "wednesday_7_11", "monday_7_11"}, Courses: []string{"analisis_de_algoritmos", "estrategias_de_solucion_de_problemas", "introduccion_a_la_programacion"}},
	{Name: "Gonzalez Quiros Rogelio", IdNumber: "15234567", AvailableHours: []string{"monday_7_11", "friday_12_4", "wednesday_12_4"}, Courses: []string{"bases_de_datos_i", "compiladores_e_interpretes", "fundamentos_de_organizacion_de_computadoras"}},
	{Name: "Rojas Vega Diego", IdNumber: "16234567", AvailableHours: []string{"tuesday_12_4", "wednesday_12_4", "thursday_7_11"}, Courses: []string{"compiladores_e_interpretes", "arquitectura_de_computadores", "elementos_de_computacion"}},
	{Name: "Cubillo Rojas Adalberto Jesus", IdNumber: "17234567", AvailableHours: []string{"thursday_7_11", "friday_7_11", "monday_12_4"}, Courses: []string{"inteligencia_artificial", "investigacion_de_operaciones", "proyecto_de_ingenieria_de_software"}},
}

var SeedCourses = []model.CourseRecord{
	{Name: "elementos_de_computacion", Type: "normal", Credits: 3, Semester: 1},
	{Name: "analisis_y_diseno_de_algoritmos", Type: "normal", Credits: 4, Semester: 3},
	{Name: "fundamentos_de_organizacion_de_computadoras", Type: "normal", Credits: 4, Semester: 1},
	{Name: "introduccion_a_la_programacion", Type: "normal", Credits: 4, Semester: 1},
	{Name: "taller_de_programacion", Type: "normal", Credits: 4, Semester: 1},
	{Name: "estructuras_de_datos", Type: "normal", Credits: 4, Semester: 2},
	{Name: "programacion_orientada_a_objetos", Type: "normal", Credits: 4, Semester: 2},
	{Name: "analisis_de_algoritmos", Type: "normal", Credits: 4, Semester: 3},
	{Name: "arquitectura_de_computadores", Type: "normal", Credits: 4, Semester: 2},
	{Name: "bases_de_datos_i", Type: "normal", Credits: 4, Semester: 3},
	{Name: "bases_de_datos_ii", Type: "normal", Credits: 4, Semester: 4},
	{Name: "lenguajes_de_programacion", Type: "normal", Credits: 4, Semester: 4},
	{Name: "administracion_de_proyectos", Type: "normal", Credits: 3, Semester: 5},
	{Name: "compiladores_e_interpretes", Type: "normal", Credits: 4, Semester: 5},
	{Name: "requerimientos_de_software", Type: "normal", Credits: 4, Semester: 3},
	{Name: "inteligencia_artificial", Type: "normal", Credits: 4, Semester: 7},
	{Name: "investigacion_de_operaciones", Type: "normal", Credits: 4, Semester: 6},
	{Name: "principios_de_sistemas_operativos", Type: "normal", Credits: 4, Semester: 6},
	{Name: "diseno_de_software", Type: "normal", Credits: 4, Semester: 4},
	{Name: "aseguramiento_de_la_calidad_del_software", Type: "normal", Credits: 3, Semester: 5},
	{Name: "redes", Type: "normal", Credits: 4, Semester: 7},
	{Name: "proyecto_de_ingenieria_de_software", Type: "normal", Credits: 4, Semester: 7},
	{Name: "computacion_y_sociedad", Type: "normal", Credits: 2, Semester: 7},
	{Name: "introduccion_al_desarrollo_de_paginas_web", Type: "normal", Credits: 3, Semester: 6},
}
