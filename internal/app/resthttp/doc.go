// Package resthttp реализует REST API сервиса разбиения текстовых файлов на части.
// Основные эндпоинты:
//   - POST /splits — принимает файл (сырое тело или multipart-форма) и число частей, возвращает описание частей.
//   - GET /splits/{id} — описание ранее созданного разбиения.
//   - GET /splits/{id}/parts/{idx} — содержимое части как вложение с именем name_partN.ext.
//   - DELETE /splits/{id} — удаляет разбиение до истечения TTL.
//   - GET /estimate — подсказка о примерном размере части.
//   - POST /admin/gc — ручная очистка устаревших разбиений.
//   - GET /health, GET /admin/config — служебные эндпоинты.
package resthttp
